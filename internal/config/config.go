package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	env "github.com/netflix/go-env"
)

// Config holds the Azure AI Search connection settings for one run.
// Values are read once at startup; after the optional index override is
// applied the struct is treated as immutable.
type Config struct {
	Endpoint string `env:"AZURE_SEARCH_ENDPOINT"`
	APIKey   string `env:"AZURE_SEARCH_API_KEY"`
	Index    string `env:"AZURE_SEARCH_INDEX"`

	// KeyField names the index key field requested from search results
	// and written into delete actions.
	KeyField string `env:"AZURE_SEARCH_KEY_FIELD,default=id"`

	// Debug keeps the raw DEBUG value: any non-empty string other than
	// "0" turns request dumping on.
	Debug string `env:"DEBUG"`
}

// MissingEnvError lists every required environment variable that is
// unset, so the operator can fix them in one pass.
type MissingEnvError struct {
	Missing []string
}

func (e *MissingEnvError) Error() string {
	return "missing environment variables: " + strings.Join(e.Missing, ", ")
}

// Load reads configuration from a .env file (when present) and the
// process environment. Required values are not enforced here: clients
// validate right before network use so that all missing names are
// reported together.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	return &cfg, nil
}

// Missing returns the names of required environment variables that have
// no value.
func (c *Config) Missing() []string {
	var missing []string
	if c.Endpoint == "" {
		missing = append(missing, "AZURE_SEARCH_ENDPOINT")
	}
	if c.APIKey == "" {
		missing = append(missing, "AZURE_SEARCH_API_KEY")
	}
	if c.Index == "" {
		missing = append(missing, "AZURE_SEARCH_INDEX")
	}
	return missing
}

// Validate reports all missing required values as a single error.
func (c *Config) Validate() error {
	if missing := c.Missing(); len(missing) > 0 {
		return &MissingEnvError{Missing: missing}
	}
	return nil
}

// DebugEnabled reports whether request dumping is on: any non-empty
// DEBUG value other than "0" enables it.
func (c *Config) DebugEnabled() bool {
	return c.Debug != "" && c.Debug != "0"
}
