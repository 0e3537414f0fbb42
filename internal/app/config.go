package app

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string `env:"DISPLAYINFO_HOME"`   // state directory, e.g. $HOME/.displayinfo
	RemoteURL string `env:"DISPLAYINFO_REMOTE"` // displayinfod base URL, e.g. http://127.0.0.1:8080

	Addr            string        `env:"DISPLAYINFO_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"DISPLAYINFO_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	OTelEndpoint    string        `env:"DISPLAYINFO_OTEL_ENDPOINT"`
	OTelEnabled     bool          `env:"DISPLAYINFO_OTEL_ENABLED" envDefault:"true"`

	HTTP *http.Client `env:"-"` // optional; defaults to a client with a 10s timeout
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadConfig reads Config from the environment and fills in the default home.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Home == "" {
		home, err := DefaultHome()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = home
	}
	return cfg, nil
}

// DefaultHome returns ~/.displayinfo.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(dir, ".displayinfo"), nil
}
