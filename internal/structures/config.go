package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type AuthConfig struct {
	Secret   string        `yaml:"secret" validate:"required|minLen:16"`
	TokenTTL time.Duration `yaml:"tokenTTL" validate:"required|min:1"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LLMConfig struct {
	Enabled         bool          `yaml:"enabled"`
	APIKey          string        `yaml:"apiKey"`
	BaseURL         string        `yaml:"baseURL"`
	Model           string        `yaml:"model"`
	MaxOutputTokens int64         `yaml:"maxOutputTokens"`
	Timeout         time.Duration `yaml:"timeout"`
	MaxRetries      int           `yaml:"maxRetries"`
}

type AnalyticsConfig struct {
	LowMoodThreshold           float64 `yaml:"lowMoodThreshold"`
	NegativeSentimentThreshold float64 `yaml:"negativeSentimentThreshold"`
	StatsWindowDays            int     `yaml:"statsWindowDays"`
	ChatHistoryLimit           int     `yaml:"chatHistoryLimit"`
}

type EventsConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type MediaConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Bucket     string        `yaml:"bucket"`
	Region     string        `yaml:"region"`
	PresignTTL time.Duration `yaml:"presignTTL"`
	MaxSizeMB  int           `yaml:"maxSizeMB"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server          `yaml:"webServer"`
	Persistence Persistence     `yaml:"persistence"`
	Logger      LoggerConfig    `yaml:"logger"`
	Auth        AuthConfig      `yaml:"auth"`
	Cache       CacheConfig     `yaml:"cache"`
	Metrics     MetricsConfig   `yaml:"metrics"`
	LLM         LLMConfig       `yaml:"llm"`
	Analytics   AnalyticsConfig `yaml:"analytics"`
	Events      EventsConfig    `yaml:"events"`
	Media       MediaConfig     `yaml:"media"`
}
