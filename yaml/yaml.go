// Package yaml provides a YAML codec for duplo snapshots.
package yaml

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/duplo"
)

// yamlCodec implements duplo.Codec for YAML.
type yamlCodec struct {
	indent int
}

// New returns a YAML codec using the library's default indentation.
func New() duplo.Codec {
	return &yamlCodec{}
}

// NewWithIndent returns a YAML codec indenting nested mappings and
// sequences by the given number of spaces.
func NewWithIndent(spaces int) duplo.Codec {
	return &yamlCodec{indent: spaces}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	if c.indent <= 0 {
		return yaml.Marshal(v)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
