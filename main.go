package main

import (
	"flag"
	"fmt"
	"mindcare/internal/di"
	"mindcare/internal/structures"
	"os"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "c", "config.yml", "path to the configuration file")
	flag.BoolVar(&flags.DebugMode, "d", false, "enable debug mode")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "mindcare: %s\n", err)
		os.Exit(1)
	}
}
