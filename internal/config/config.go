package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the service configuration, read from config.yaml and
// FRIDGEWATCH_-prefixed environment variables. All fields default to a
// runnable single-process setup with in-memory storage.
type Config struct {
	ListenAddr  string `mapstructure:"listen_addr"`
	DatabaseURL string `mapstructure:"database_url"`
	RedisAddr   string `mapstructure:"redis_addr"`
	DetectorURL string `mapstructure:"detector_url"`

	FCMEndpoint    string `mapstructure:"fcm_endpoint"`
	FCMBearerToken string `mapstructure:"fcm_bearer_token"`

	SpoilageThresholdHours float64       `mapstructure:"spoilage_threshold_hours"`
	QueueSize              int           `mapstructure:"queue_size"`
	SummaryInterval        time.Duration `mapstructure:"summary_interval"`
}

// Load reads the configuration. A missing config file is not an error;
// environment variables alone are enough.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("detector_url", "")
	v.SetDefault("fcm_endpoint", "")
	v.SetDefault("fcm_bearer_token", "")
	v.SetDefault("spoilage_threshold_hours", 6.0)
	v.SetDefault("queue_size", 64)
	v.SetDefault("summary_interval", 24*time.Hour)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/fridgewatch")

	v.SetEnvPrefix("FRIDGEWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
