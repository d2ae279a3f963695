package outwriter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tjo-photometry/colorcurve/schema"
	"gopkg.in/yaml.v3"
)

// manifestHeader opens every manifest file.
const manifestHeader = "# colorcurve run manifest\n"

// WriteManifest writes the run manifest as YAML, creating its directory if needed.
func WriteManifest(path string, m schema.RunManifest) error {
	var buf bytes.Buffer
	buf.WriteString(manifestHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create manifest directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a run manifest written by WriteManifest.
func ReadManifest(path string) (schema.RunManifest, error) {
	var m schema.RunManifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return m, nil
}
