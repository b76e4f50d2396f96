package extract

import (
	"archive/zip"
	"context"
	"fmt"
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"dtc/archive"
)

// HarvestArchive parses stylesheets packed into zip archive, entries are
// selected by m. Entries which cannot be read are skipped and reported in
// returned error.
func (h *Harvester) HarvestArchive(ctx context.Context, name string, m *Matcher) ([]ExtractedToken, error) {
	var (
		errs  error
		count int
	)
	base := fileURL(name)
	err := archive.Walk(name, m.Match, func(_ string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := readEntry(f)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to read stylesheet %s: %w", f.Name, err))
			return nil
		}
		count++
		h.Harvest(data, base+"!/"+f.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to walk archive %s: %w", name, err)
	}
	h.log.Debug("Archive harvested", zap.String("archive", name), zap.Int("stylesheets", count))
	return h.Tokens(), errs
}

func readEntry(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
