package config

import (
	"encoding/base64"
	"fmt"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"

	"activitylog/pkg/utils"
)

// TODO: Move into a separate package
var Validate *validator.Validate

type Config struct {
	ServerPort       int      `mapstructure:"SERVER_PORT"`
	DatabasePath     string   `mapstructure:"DATABASE_PATH"`
	SecretKey        string   `mapstructure:"SECRET_KEY"`
	AllowedUsers     []string `mapstructure:"ALLOWED_USERS"`
	DebugEndpoint    bool     `mapstructure:"DEBUG_ENDPOINT"`
	MailgunAPIKey    string   `mapstructure:"MAILGUN_API_KEY"`
	MailgunDomain    string   `mapstructure:"MAILGUN_DOMAIN"`
	MailgunAPIBase   string   `mapstructure:"MAILGUN_API_BASE"`
	NotificationFrom string   `mapstructure:"NOTIFICATION_FROM"`
}

func Load() (*Config, error) {
	viper.SetDefault("SERVER_PORT", 3000)
	viper.SetDefault("DATABASE_PATH", "activitylog.db")
	viper.SetDefault("DEBUG_ENDPOINT", false)
	viper.SetDefault("ALLOWED_USERS", []string{
		"gcptrail0@gmail.com",
		"pravinrajagcp@gmail.com",
		"parthibank72@gmail.com",
	})

	viper.SetEnvPrefix("AL")
	viper.AutomaticEnv()

	viper.BindEnv("SECRET_KEY")

	viper.BindEnv("MAILGUN_API_KEY")
	viper.BindEnv("MAILGUN_DOMAIN")
	viper.BindEnv("MAILGUN_API_BASE")
	viper.BindEnv("NOTIFICATION_FROM")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/activitylog/")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// SECRET_KEY must be base64 of a 32 byte key. An absent key gets an
	// ephemeral one, which invalidates all session cookies on restart.
	if cfg.SecretKey == "" {
		log.Warn("SECRET_KEY not set, using an ephemeral session key")
		cfg.SecretKey = base64.StdEncoding.EncodeToString([]byte(utils.GenerateRandomString(32)))
	}

	Validate = validator.New()

	return &cfg, nil
}

func (cfg *Config) MailEnabled() bool {
	return cfg.MailgunDomain != "" && cfg.MailgunAPIKey != "" && cfg.NotificationFrom != ""
}
