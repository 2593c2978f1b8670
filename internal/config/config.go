package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// PageSize is the number of events requested per artist.
	PageSize = 5
	// RequestDelay is the pause between two artist lookups.
	RequestDelay = 500 * time.Millisecond

	DefaultDMAID   = 324
	DefaultBaseURL = "https://app.ticketmaster.com"
)

// DefaultArtists is the lineup searched on every run.
var DefaultArtists = []string{"Rebecca Black", "Nessa Barrett", "Taylor Swift"}

var ErrMissingAPIKey = errors.New("missing TICKETMASTER_API_KEY environment variable")

type Config struct {
	Discovery DiscoveryConfig
	Log       LogConfig
	Artists   []string
	Delay     time.Duration
}

type DiscoveryConfig struct {
	BaseURL  string
	APIKey   string
	DMAID    int
	PageSize int
	Timeout  time.Duration // zero keeps the http.Client default
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads the configuration from the environment. The API key is the only
// required value; without it no request can be made.
func Load() (*Config, error) {
	apiKey := strings.TrimSpace(os.Getenv("TICKETMASTER_API_KEY"))
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	artists := make([]string, len(DefaultArtists))
	copy(artists, DefaultArtists)

	return &Config{
		Discovery: DiscoveryConfig{
			BaseURL:  strings.TrimRight(getEnv("TICKETMASTER_BASE_URL", DefaultBaseURL), "/"),
			APIKey:   apiKey,
			DMAID:    getEnvInt("TICKETMASTER_DMA_ID", DefaultDMAID),
			PageSize: PageSize,
			Timeout:  getEnvDuration("HTTP_TIMEOUT", 0),
		},
		Log: LogConfig{
			Level:  strings.ToUpper(getEnv("LOG_LEVEL", "INFO")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		Artists: artists,
		Delay:   RequestDelay,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
