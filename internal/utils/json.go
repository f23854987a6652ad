package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadJSON reads a game asset into target. Files ending in .yaml or .yml are
// converted to JSON first so the target's json tags apply to both formats.
func LoadJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if IsYAML(path) {
		if data, err = YAMLToJSON(data); err != nil {
			return fmt.Errorf("failed to parse YAML from %s: %w", path, err)
		}
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}

// FindAsset returns the first of base+".json", base+".yaml" and base+".yml"
// that exists.
func FindAsset(base string) (string, bool) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		if _, err := os.Stat(base + ext); err == nil {
			return base + ext, true
		}
	}
	return "", false
}

// IsYAML reports whether path names a YAML document
func IsYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// YAMLToJSON re-encodes a YAML mapping document as JSON
func YAMLToJSON(data []byte) ([]byte, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}
