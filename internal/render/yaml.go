// Package render encodes the final configuration as the scoring engine's
// YAML artifact. Encoding failures here are a boundary concern, distinct
// from the conversion errors produced by the convert package.
package render

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"scoreconf/internal/model"
)

// Render returns the scoring-engine document: a YAML document marker, the
// configuration, and the trailing top-level flags key the engine expects.
func Render(cfg *model.Config) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return "", fmt.Errorf("encoding configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding configuration: %w", err)
	}

	buf.WriteString("\nflags: []\n")
	return buf.String(), nil
}
