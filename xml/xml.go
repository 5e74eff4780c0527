// Package xml provides an XML codec for duplo snapshots.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/duplo"
)

// xmlCodec implements duplo.Codec for XML.
type xmlCodec struct {
	indent string
}

// New returns an XML codec producing compact output.
func New() duplo.Codec {
	return &xmlCodec{}
}

// NewIndented returns an XML codec that indents nested elements with the
// given string.
func NewIndented(indent string) duplo.Codec {
	return &xmlCodec{indent: indent}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	if c.indent != "" {
		return xml.MarshalIndent(v, "", c.indent)
	}
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
