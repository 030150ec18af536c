package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"mindcare/internal/structures"
	"path/filepath"
	"strings"
	"time"
)

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("auth.tokenTTL", 30*time.Minute)
	v.SetDefault("cache.ttl", 60*time.Second)
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.maxOutputTokens", 800)
	v.SetDefault("llm.timeout", 60*time.Second)
	v.SetDefault("llm.maxRetries", 2)
	v.SetDefault("analytics.lowMoodThreshold", 5.0)
	v.SetDefault("analytics.negativeSentimentThreshold", -0.3)
	v.SetDefault("analytics.statsWindowDays", 30)
	v.SetDefault("analytics.chatHistoryLimit", 20)
	v.SetDefault("events.topic", "mindcare.events")
	v.SetDefault("media.presignTTL", 15*time.Minute)
	v.SetDefault("media.maxSizeMB", 5)
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")
	setConfigDefaults(v)

	v.BindEnv("logger.level", "MINDCARE_LOG_LEVEL")
	v.BindEnv("auth.secret", "MINDCARE_JWT_SECRET")
	v.BindEnv("persistence.saveInterval", "MINDCARE_SAVE_INTERVAL")
	v.BindEnv("llm.apiKey", "MINDCARE_OPENAI_API_KEY", "OPENAI_API_KEY")
	v.BindEnv("events.brokers", "MINDCARE_KAFKA_BROKERS")
	v.BindEnv("media.bucket", "MINDCARE_S3_BUCKET")
	v.BindEnv("media.region", "MINDCARE_AWS_REGION", "AWS_REGION")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "MindCare"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
