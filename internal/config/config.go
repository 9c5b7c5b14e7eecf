package config

import (
	"log"

	"github.com/spf13/viper"
)

// Storage backend selectors.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds the application configuration.
type Config struct {
	ServerAddress     string `mapstructure:"SERVER_ADDRESS"`
	StorageBackend    string `mapstructure:"STORAGE_BACKEND"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("STORAGE_BACKEND", BackendMemory)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
