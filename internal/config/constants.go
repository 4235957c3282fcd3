package config

const (
	DefaultDatabasePath = "./booktracker.db"
	DefaultAPIURL       = "http://localhost:3001"

	EnvDevelopment = "development"
	EnvProduction  = "production"
)
