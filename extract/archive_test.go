package extract_test

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"dtc/extract"
)

func writeZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "site.zip")
	f, err := os.Create(name)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for entry, content := range entries {
		fw, err := w.Create(entry)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return name
}

func TestMatcher(t *testing.T) {
	m, err := extract.NewMatcher(nil, []string{"vendor", "**/*.min.css"})
	require.NoError(t, err)

	assert.True(t, m.Match("site.css"))
	assert.True(t, m.Match("css/theme/dark.css"))
	assert.False(t, m.Match("css/theme.min.css"))
	assert.False(t, m.Match("vendor/lib.css"), "parent directory is excluded")
	assert.False(t, m.Match("index.html"))
	assert.True(t, m.Excluded("vendor"))

	_, err = extract.NewMatcher([]string{"[css"}, nil)
	assert.Error(t, err)
}

func TestHarvestArchive(t *testing.T) {
	name := writeZip(t, map[string]string{
		"assets/site.css":     ":root { --brand: #0d6efd; }\n.a { color: var(--brand); }",
		"assets/site.min.css": ":root { --minified: #000000; }",
		"assets/app.js":       "var x = '#ffffff';",
	})
	m, err := extract.NewMatcher(nil, []string{"**/*.min.css"})
	require.NoError(t, err)

	list, err := extract.NewHarvester(1, zaptest.NewLogger(t)).HarvestArchive(context.Background(), name, m)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "brand", list[0].Name)
	assert.Equal(t, 1, list[0].UsageCount)
	require.Len(t, list[0].SourceURLs, 1)
	assert.True(t, strings.HasSuffix(list[0].SourceURLs[0], "site.zip!/assets/site.css"), list[0].SourceURLs[0])
}

func TestHarvestArchiveErrors(t *testing.T) {
	m, err := extract.NewMatcher(nil, nil)
	require.NoError(t, err)

	_, err = extract.NewHarvester(1, nil).HarvestArchive(context.Background(), filepath.Join(t.TempDir(), "absent.zip"), m)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	name := writeZip(t, map[string]string{"a.css": ".a { color: red; }"})
	_, err = extract.NewHarvester(1, nil).HarvestArchive(ctx, name, m)
	assert.ErrorIs(t, err, context.Canceled)
}
