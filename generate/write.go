package generate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dtc/tokens"
)

// Encode serializes document, pretty output is indented with 2 spaces.
// Output always ends with a new line.
func Encode(doc *tokens.Document, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("unable to encode token document: %w", err)
	}
	return buf.Bytes(), nil
}

// Write stores document as <prefix>.tokens.json in the output directory,
// creating it when necessary. Absolute path of the written file is returned.
func Write(doc *tokens.Document, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	data, err := Encode(doc, opts.PrettyPrint)
	if err != nil {
		return "", err
	}

	dir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("unable to create output directory: %w", err)
	}

	fname := filepath.Join(dir, opts.FileName())
	if err := os.WriteFile(fname, data, 0644); err != nil {
		return "", fmt.Errorf("unable to write token document: %w", err)
	}
	return fname, nil
}
