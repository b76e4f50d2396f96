package generate

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
)

// PrefixValues are available to the output prefix template.
type PrefixValues struct {
	Command string // generate or scan
	Source  string // payload or scanned directory base name without extension
}

// NewPrefixValues returns template values for command working on source path.
func NewPrefixValues(command, source string) PrefixValues {
	name := "stdin"
	if source != "-" {
		name = filepath.Base(source)
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return PrefixValues{Command: command, Source: name}
}

// ExpandPrefix expands output prefix as Go template with slim-sprig
// functions, prefix without actions is returned unchanged.
func ExpandPrefix(prefix string, values PrefixValues) (string, error) {
	if !strings.Contains(prefix, "{{") {
		return prefix, nil
	}
	tmpl, err := template.New("prefix").Funcs(sprig.FuncMap()).Parse(prefix)
	if err != nil {
		return "", fmt.Errorf("unable to parse output prefix template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, values); err != nil {
		return "", fmt.Errorf("unable to expand output prefix template: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}
