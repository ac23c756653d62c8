package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log formats accepted by --log-format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// newLogger builds the slog logger shared by the commands. Level names are the
// ones slog understands (debug, info, warn, error).
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case FormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", format, FormatJSON, FormatText)
	}
}
