package cli

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Output formats accepted by the fill command.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ErrParsingConfig is returned when the environment holds a value that cannot
// be parsed into Config.
var ErrParsingConfig = errors.New("cli: failed to parse config")

// Config holds the settings read from STEPFORM_* environment variables.
// Command-line flags take precedence over these values.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Output    string `env:"OUTPUT" envDefault:"json"`
}

// LoadConfig reads an optional .env file from the working directory, then the
// environment.
func LoadConfig() (Config, error) {
	// Ignore errors - the .env file might not exist and that's ok
	_ = godotenv.Load()

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "STEPFORM_"}); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	if err := checkOutput(cfg.Output); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func checkOutput(output string) error {
	switch output {
	case OutputJSON, OutputYAML:
		return nil
	default:
		return fmt.Errorf("invalid output %q: must be %q or %q", output, OutputJSON, OutputYAML)
	}
}
