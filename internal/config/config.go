package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds the configuration settings for the application.
// It includes the environment type, database configuration, the Telegram
// bot token, the HTTP listen port, and the bot poller timeout.
type Config struct {
	Env           string         `yaml:"env"`      // Env is the current environment: local, dev, prod.
	Database      PostgresConfig `yaml:"postgres"` // Database holds the postgres database configuration.
	Token         string         `yaml:"token"`    // Token is the unique telegram bot token.
	HTTPPort      int            `yaml:"http_port"`
	PollerTimeout time.Duration  `yaml:"poller_timeout"` // PollerTimeout is the telegram long-poller timeout.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`     // Host is the database server address.
	Port     string `yaml:"port"`     // Port is the database server port.
	User     string `yaml:"user"`     // User is the database user.
	Password string `yaml:"password"` // Password is the database user's password.
	Name     string `yaml:"db_name"`  // Name is the name of the database.
}

// MustLoad loads the configuration from a YAML file and returns a Config struct.
// The bot cannot operate without a Telegram token, so a missing token panics.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		panic("config path is empty")
	}

	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		panic("config error: " + err.Error())
	}

	const defPollerTimeout = 10
	const defHTTPPort = 8080

	viper.SetDefault("postgres.port", "5432")
	viper.SetDefault("http.port", defHTTPPort)
	viper.SetDefault("telegram.timeout", time.Duration(defPollerTimeout*int(time.Second)))

	token := viper.GetString("telegram.token")
	if token == "" {
		panic("telegram token is required")
	}

	return &Config{
		Env:           viper.GetString("env"),
		Token:         token,
		HTTPPort:      viper.GetInt("http.port"),
		PollerTimeout: viper.GetDuration("telegram.timeout"),
		Database: PostgresConfig{
			Host:     viper.GetString("postgres.host"),
			Port:     viper.GetString("postgres.port"),
			User:     viper.GetString("postgres.user"),
			Password: viper.GetString("postgres.password"),
			Name:     viper.GetString("postgres.db_name"),
		},
	}
}
