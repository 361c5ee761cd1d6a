package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken     string
	DiscordAppID     string
	DiscordPublicKey string // hex-encoded Ed25519 key for webhook verification
	DiscordGuildID   string

	// Backing store configuration
	SpreadsheetID   string
	CredentialsPath string // service account credentials JSON file

	// Webhook server configuration
	ListenAddr string

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	mu       sync.Mutex
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		cfg, err := load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
		instance = cfg
	}
	return instance
}

// SetTestConfig replaces the global configuration for tests
func SetTestConfig(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = cfg
}

// NewTestConfig returns a configuration suitable for tests
func NewTestConfig() *Config {
	return &Config{
		ListenAddr:  ":0",
		Environment: "test",
	}
}

// load loads configuration from the environment, reading a .env file first
// if one is present
func load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DiscordToken:     os.Getenv("DISCORD_BOT_TOKEN"),
		DiscordAppID:     os.Getenv("DISCORD_CLIENT_ID"),
		DiscordPublicKey: os.Getenv("DISCORD_PUBLIC_KEY"),
		DiscordGuildID:   os.Getenv("DISCORD_GUILD_ID"),

		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		CredentialsPath: os.Getenv("GDRIVE_API_CREDENTIALS"),

		ListenAddr:  os.Getenv("LISTEN_ADDR"),
		Environment: os.Getenv("ENVIRONMENT"),
	}

	if config.ListenAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			config.ListenAddr = ":" + port
		} else {
			config.ListenAddr = ":8080"
		}
	}
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
		}
		if config.DiscordAppID == "" {
			return nil, fmt.Errorf("DISCORD_CLIENT_ID is required")
		}
		if config.DiscordPublicKey == "" {
			return nil, fmt.Errorf("DISCORD_PUBLIC_KEY is required")
		}
		if config.SpreadsheetID == "" {
			return nil, fmt.Errorf("SPREADSHEET_ID is required")
		}
		if config.CredentialsPath == "" {
			return nil, fmt.Errorf("GDRIVE_API_CREDENTIALS is required")
		}
	}

	return config, nil
}
