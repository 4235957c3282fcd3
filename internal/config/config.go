package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Client
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		Env                      string // development or production
		LogLevel                 string
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Client struct {
		APIURL string // base URL the CLI commands talk to
	}
)

// IsDevelopment reports whether the server runs in development mode.
// Development mode includes underlying error detail in 500 responses.
func (g Global) IsDevelopment() bool {
	return g.Env == EnvDevelopment
}

func NewConfig() *Config {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 3001)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("api_url", DefaultAPIURL)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			Env:                      v.GetString("ENV"),
			LogLevel:                 v.GetString("LOG_LEVEL"),
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Client: Client{
			APIURL: v.GetString("API_URL"),
		},
	}
}
