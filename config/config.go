package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// AI Configuration
	OpenAIKey   string `mapstructure:"OPENAI_API_KEY"` // API key for OpenAI
	ChatModelID string `mapstructure:"CHAT_MODEL_ID"`  // e.g., "gpt-3.5-turbo"

	// Storage Configuration
	LandingPagesDir string `mapstructure:"LANDING_PAGES_DIR"` // Directory for generated .html assets
	UploadsDir      string `mapstructure:"UPLOADS_DIR"`       // Directory for uploaded images
	MaxUploadBytes  int64  `mapstructure:"MAX_UPLOAD_BYTES"`  // Upload size limit

	// Transport Configuration
	AllowedOrigins string  `mapstructure:"ALLOWED_ORIGINS"`  // Comma-separated CORS origins; empty allows all
	RateLimitRPS   float64 `mapstructure:"RATE_LIMIT_RPS"`   // Per-IP requests per second for generation; 0 disables
	RateLimitBurst int     `mapstructure:"RATE_LIMIT_BURST"` // Per-IP burst size
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)     // Path to look for the config file in
	viper.SetConfigName("config") // Name of config file (without extension)
	viper.SetConfigType("yaml")

	// Defaults double as key registrations so AutomaticEnv values survive
	// Unmarshal even without a config file.
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("ALLOWED_ORIGINS", "")
	viper.SetDefault("CHAT_MODEL_ID", "gpt-3.5-turbo")
	viper.SetDefault("LANDING_PAGES_DIR", "landing-pages")
	viper.SetDefault("UPLOADS_DIR", "uploads")
	viper.SetDefault("MAX_UPLOAD_BYTES", 5*1024*1024)
	viper.SetDefault("RATE_LIMIT_RPS", 1.0)
	viper.SetDefault("RATE_LIMIT_BURST", 5)

	viper.AutomaticEnv() // Read environment variables that match keys

	// Attempt to read the config file
	err = viper.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", viper.ConfigFileUsed())
	}

	// Unmarshal the configuration into the Config struct
	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		log.Println("WARN: OPENAI_API_KEY is not set. Filename generation will fall back to timestamps and page generation will fail.")
	}

	return
}
