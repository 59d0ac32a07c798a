package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config maps the whole application configuration. Values come from
// ./configs/config.yaml with environment-variable overrides (dots become
// underscores, e.g. "server.port" -> SERVER_PORT, "mailer.host" -> MAILER_HOST).
type Config struct {
	// Server holds the HTTP server settings.
	Server struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`

	// Database holds the SQLite settings.
	Database struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"database"`

	// CORS lists the origins allowed to call the API (the site frontend).
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`

	// Mailer configures the SMTP transport for contact-form notifications.
	// Notifications are disabled when Host is empty.
	Mailer struct {
		Host      string `mapstructure:"host"`
		Port      int    `mapstructure:"port"`
		User      string `mapstructure:"user"`
		Password  string `mapstructure:"password"`
		Recipient string `mapstructure:"recipient"`
	} `mapstructure:"mailer"`

	// Notifications configures the asynchronous delivery workers.
	Notifications struct {
		BufferSize  int `mapstructure:"buffer_size"`
		WorkerCount int `mapstructure:"worker_count"`
	} `mapstructure:"notifications"`

	// Monitor configures the project-link health checker.
	Monitor struct {
		IntervalMinutes int `mapstructure:"interval_minutes"`
	} `mapstructure:"monitor"`
}

// LoadConfig loads the application configuration using Viper.
// A missing config file is not an error; defaults are used instead.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.AddConfigPath("./configs")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.name", "portfolio.db")
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:5173"})
	viper.SetDefault("mailer.host", "")
	viper.SetDefault("mailer.port", 587)
	viper.SetDefault("mailer.user", "")
	viper.SetDefault("mailer.password", "")
	viper.SetDefault("mailer.recipient", "")
	viper.SetDefault("notifications.buffer_size", 100)
	viper.SetDefault("notifications.worker_count", 2)
	viper.SetDefault("monitor.interval_minutes", 30)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found, using default values")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	log.Printf("Configuration loaded: Server Port=%d, DB Name=%s, Notification Workers=%d, Monitor Interval=%dmin",
		cfg.Server.Port, cfg.Database.Name, cfg.Notifications.WorkerCount, cfg.Monitor.IntervalMinutes)

	return &cfg, nil
}
