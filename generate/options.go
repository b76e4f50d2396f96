// Package generate builds design tokens document out of extracted tokens and
// writes it to disk.
package generate

import (
	"errors"

	"github.com/gosimple/slug"
)

const (
	// MediaType of the generated document.
	MediaType = "application/design-tokens+json"
	// FileSuffix of the generated document.
	FileSuffix = ".tokens.json"

	DefaultFilePrefix      = "design"
	DefaultVendorNamespace = "com.designtokencrawler"
)

// Options control document layout and output location.
type Options struct {
	OutputDir       string
	FilePrefix      string
	UseGroups       bool // group by token type and category, flat document otherwise
	PrettyPrint     bool
	VendorNamespace string // `$extensions` key of crawler metadata
}

// DefaultOptions returns grouped pretty printed layout, output directory
// still has to be set.
func DefaultOptions() Options {
	return Options{
		FilePrefix:      DefaultFilePrefix,
		UseGroups:       true,
		PrettyPrint:     true,
		VendorNamespace: DefaultVendorNamespace,
	}
}

// Validate checks that options could be used to write document.
func (o Options) Validate() error {
	if o.OutputDir == "" {
		return errors.New("output directory is required")
	}
	if o.VendorNamespace == "" {
		return errors.New("vendor namespace is required")
	}
	return nil
}

// FileName returns base name of the output file. Prefix is normalized to
// be safe in file names, empty prefix falls back to default.
func (o Options) FileName() string {
	prefix := slug.Make(o.FilePrefix)
	if prefix == "" {
		prefix = DefaultFilePrefix
	}
	return prefix + FileSuffix
}
