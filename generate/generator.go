package generate

import (
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"dtc/extract"
	"dtc/tokens"
)

// Generator builds, validates and writes token documents. It keeps no state
// between calls.
type Generator struct {
	opts Options
	log  *zap.Logger

	// Inspect, when set, receives every built document before it is written.
	Inspect func(doc *tokens.Document)
}

// NewGenerator returns generator writing documents according to opts.
func NewGenerator(opts Options, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{opts: opts, log: log.Named("generator")}
}

// Generate writes document built from data and returns its absolute path.
// Name violations are logged but do not stop generation.
func (g *Generator) Generate(data []extract.ExtractedToken) (string, error) {
	start := time.Now()

	if err := g.opts.Validate(); err != nil {
		return "", err
	}

	doc, rep := build(data, g.opts)
	for _, path := range rep.replaced {
		g.log.Warn("Duplicate token name, earlier token replaced", zap.String("path", path))
	}
	for _, path := range rep.skipped {
		g.log.Warn("Token without value skipped", zap.String("path", path))
	}
	for _, path := range rep.untyped {
		g.log.Warn("Token of unknown type skipped", zap.String("path", path))
	}
	if err := Validate(doc); err != nil {
		for _, e := range multierr.Errors(err) {
			g.log.Warn("Token document name violation", zap.Error(e))
		}
	}
	if g.Inspect != nil {
		g.Inspect(doc)
	}

	fname, err := Write(doc, g.opts)
	if err != nil {
		return "", err
	}

	groups, count := doc.Stats()
	g.log.Info("Token document written",
		zap.String("file", fname),
		zap.Int("input", len(data)),
		zap.Int("tokens", count),
		zap.Int("groups", groups),
		zap.Duration("elapsed", time.Since(start)))
	return fname, nil
}
