package config

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ResolveText picks the input text: --file wins, then --text ("-" reads
// stdin), then the positional arguments joined by spaces.
func (c *Config) ResolveText(args []string, stdin io.Reader) (string, error) {
	switch {
	case c.File != "":
		content, err := os.ReadFile(c.File)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return strings.TrimSpace(string(content)), nil
	case c.Text == "-":
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return strings.TrimSpace(string(content)), nil
	case c.Text != "":
		return c.Text, nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	}

	return "", fmt.Errorf("text is required (use -t, -f, or provide as argument)")
}
