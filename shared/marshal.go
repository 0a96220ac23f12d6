package shared

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalWithExt decodes YAML for .yaml and .yml extensions, JSON otherwise.
// Blank documents leave into unchanged.
func UnmarshalWithExt(data []byte, into interface{}, ext string) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, into); err != nil {
			return fmt.Errorf("failed to parse yaml due to the: %w", err)
		}
	default:
		if err := json.Unmarshal(data, into); err != nil {
			return fmt.Errorf("failed to parse json due to the: %w", err)
		}
	}
	return nil
}
