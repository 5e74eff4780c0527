// Package json provides a JSON codec for duplo snapshots.
package json

import (
	"encoding/json"

	"github.com/zoobzio/duplo"
)

// jsonCodec implements duplo.Codec for JSON.
type jsonCodec struct {
	indent string
}

// New returns a JSON codec producing compact output.
func New() duplo.Codec {
	return &jsonCodec{}
}

// NewIndented returns a JSON codec that indents nested elements with the
// given string, for snapshots meant to be read or diffed by humans.
func NewIndented(indent string) duplo.Codec {
	return &jsonCodec{indent: indent}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	if c.indent != "" {
		return json.MarshalIndent(v, "", c.indent)
	}
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
