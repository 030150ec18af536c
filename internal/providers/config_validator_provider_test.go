package providers

import (
	"mindcare/internal/structures"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Persistence: structures.Persistence{
			FilePath:     "/tmp/mindcare.dat",
			SaveInterval: 30 * time.Second,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Auth: structures.AuthConfig{
			Secret:   "0123456789abcdef0123",
			TokenTTL: 30 * time.Minute,
		},
		Analytics: structures.AnalyticsConfig{
			LowMoodThreshold:           5,
			NegativeSentimentThreshold: -0.3,
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ShortSecret(t *testing.T) {
	c := validConfig()
	c.Auth.Secret = "short"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_LLMEnabledWithoutKey(t *testing.T) {
	c := validConfig()
	c.LLM.Enabled = true
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EventsEnabledWithoutBrokers(t *testing.T) {
	c := validConfig()
	c.Events.Enabled = true
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_SentimentThresholdOutOfRange(t *testing.T) {
	c := validConfig()
	c.Analytics.NegativeSentimentThreshold = -2
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestNewConfigProvider_ReadsYamlAndDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	yml := `
webServer:
  host: 127.0.0.1
  port: 9000
persistence:
  filePath: /tmp/mindcare.dat
  saveInterval: 45s
logger:
  level: debug
  mode: 420
  dir: /tmp
auth:
  secret: 0123456789abcdef0123
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "MindCare", conf.AppName)
	assert.True(t, conf.Debug)
	assert.Equal(t, 9000, conf.WebServer.Port)
	assert.Equal(t, 45*time.Second, conf.Persistence.SaveInterval)
	assert.Equal(t, 30*time.Minute, conf.Auth.TokenTTL)
	assert.Equal(t, 5.0, conf.Analytics.LowMoodThreshold)
	assert.Equal(t, -0.3, conf.Analytics.NegativeSentimentThreshold)
	assert.Equal(t, 30, conf.Analytics.StatsWindowDays)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yml")})
	assert.Error(t, err)
}

func TestConfigValidator_LoggerModeNeedsOwnerReadWrite(t *testing.T) {
	for _, mode := range []uint32{1, 0400, 0200, 0o1000644} {
		c := validConfig()
		c.Logger.Mode = mode
		assert.Error(t, NewCnfValidator(c).Validate(), "%#o", mode)
	}
	for _, mode := range []uint32{0600, 0640, 0644} {
		c := validConfig()
		c.Logger.Mode = mode
		assert.NoError(t, NewCnfValidator(c).Validate(), "%#o", mode)
	}
}

func TestNewConfigProvider_ShippedConfig(t *testing.T) {
	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join("..", "..", "config.yml")})
	require.NoError(t, err)

	assert.Equal(t, uint32(0644), conf.Logger.Mode)
	assert.Equal(t, 18090, conf.WebServer.Port)
	assert.Equal(t, "/var/log/mindcare", conf.Logger.Dir)
}
