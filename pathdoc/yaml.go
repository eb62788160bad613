package pathdoc

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"honnef.co/go/polyline"
)

// EncodeYAML writes p to w as a YAML document.
func EncodeYAML(w io.Writer, p *polyline.Path) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromPath(p)); err != nil {
		return fmt.Errorf("pathdoc: encoding path: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("pathdoc: encoding path: %w", err)
	}
	return nil
}

// DecodeYAML reads a YAML document from r and returns its path. Unknown keys
// are an error.
func DecodeYAML(r io.Reader) (*polyline.Path, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("pathdoc: decoding document: %w", err)
	}
	return doc.load("yaml")
}
