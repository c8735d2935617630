package cli

import (
	"fmt"
	"io"
	"strings"

	"quizterm/internal/config"
)

// loadConfig loads the config at path, or the nearest .quizterm/config.yml,
// or the defaults when neither exists.
func loadConfig(path string, stderr io.Writer) (config.Config, bool) {
	cfg, _, err := config.LoadOrDefault(strings.TrimSpace(path))
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
		return config.Config{}, false
	}
	return cfg, true
}
