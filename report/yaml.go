package report

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAML writes report as a YAML document
func (r *Report) YAML(writer io.Writer) error {
	enc := yaml.NewEncoder(writer)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
