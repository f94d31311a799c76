package model

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DecodeEditor reads an editor document, rejecting unknown fields so typos
// in hand-edited documents surface immediately.
func DecodeEditor(r io.Reader) (*Editor, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var editor Editor
	if err := dec.Decode(&editor); err != nil {
		return nil, fmt.Errorf("decoding editor document: %w", err)
	}
	return &editor, nil
}

// LoadEditor reads an editor document from a file.
func LoadEditor(path string) (*Editor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeEditor(bytes.NewReader(data))
}

// EncodeEditor writes an editor document as YAML.
func EncodeEditor(w io.Writer, editor *Editor) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(editor); err != nil {
		return fmt.Errorf("encoding editor document: %w", err)
	}
	return enc.Close()
}
