package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer zr.Close()

	files := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		files[f.Name] = string(data)
	}
	return files
}

func TestReport_Archive(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}
	if r.Name() != conf.Destination {
		t.Errorf("Name() = %q, want %q", r.Name(), conf.Destination)
	}

	stored := filepath.Join(dir, "design.tokens.json")
	if err := os.WriteFile(stored, []byte(`{"colors":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	copied := filepath.Join(dir, "payload.yaml")
	if err := os.WriteFile(copied, []byte("tokens: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("result.json", stored)
	r.Store("missing.log", filepath.Join(dir, "absent.log"))
	r.StoreData("document.txt", []byte("Token document: 0 groups, 0 tokens\n"))
	if err := r.StoreCopy("payload.yaml", copied); err != nil {
		t.Fatalf("StoreCopy() error: %v", err)
	}
	// content was captured at the time of the call
	if err := os.WriteFile(copied, []byte("changed"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	files := readArchive(t, conf.Destination)
	if files["result.json"] != `{"colors":{}}` {
		t.Errorf("result.json = %q", files["result.json"])
	}
	if files["payload.yaml"] != "tokens: []\n" {
		t.Errorf("payload.yaml = %q, want content at the time of copy", files["payload.yaml"])
	}
	if !strings.HasPrefix(files["document.txt"], "Token document") {
		t.Errorf("document.txt = %q", files["document.txt"])
	}
	if _, ok := files["missing.log"]; ok {
		t.Error("absent file should not be archived")
	}
	manifest := files["MANIFEST"]
	for _, name := range []string{"document.txt", "missing.log", "payload.yaml", "result.json"} {
		if !strings.Contains(manifest, name) {
			t.Errorf("MANIFEST does not list %s:\n%s", name, manifest)
		}
	}
	if !strings.Contains(strings.SplitN(manifest, "\n", 2)[0], r.ID()) {
		t.Errorf("MANIFEST header does not carry run id %s:\n%s", r.ID(), manifest)
	}
}

func TestReport_StoreCopyVersionsNames(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.css")
	if err := os.WriteFile(src, []byte(":root{}"), 0644); err != nil {
		t.Fatal(err)
	}

	r := &Report{entries: make(map[string]entry)}
	for range 2 {
		if err := r.StoreCopy("source.css", src); err != nil {
			t.Fatalf("StoreCopy() error: %v", err)
		}
	}
	if len(r.entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(r.entries))
	}
	if err := r.StoreCopy("other.css", filepath.Join(dir, "absent.css")); err == nil {
		t.Error("StoreCopy() of absent file should fail")
	}
}

func TestReport_StoreOverwritePanics(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.StoreData("data", []byte("one"))

	defer func() {
		if recover() == nil {
			t.Error("StoreData() with existing name should panic")
		}
	}()
	r.StoreData("data", []byte("two"))
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	r.Store("x", "y")
	r.StoreData("x", nil)
	if err := r.StoreCopy("x", "y"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() on nil report = %q", r.Name())
	}
	if r.ID() != "" {
		t.Errorf("ID() on nil report = %q", r.ID())
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
