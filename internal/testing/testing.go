// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

// Site file contents used by [SiteFS] and [WriteSite].
const (
	IndexHTML   = "<!DOCTYPE html><html><head><title>Launchora</title></head><body>home</body></html>"
	AboutHTML   = "<!DOCTYPE html><html><head><title>About</title></head><body>about</body></html>"
	DocsHTML    = "<!DOCTYPE html><html><head><title>Docs</title></head><body>docs</body></html>"
	StylesCSS   = "body { margin: 0; }\n"
	ScriptsJS   = "document.addEventListener('DOMContentLoaded', function() {});\n"
	FaviconICO  = "\x00\x00\x01\x00\x01\x00\x10\x10\x00\x00\x01\x00\x20\x00"
	PortfolioJS = "function initImageZoom() {}\n"
)

// SiteFS returns an in-memory site with an index, a page, a nested index, styles, scripts and a favicon.
func SiteFS() fstest.MapFS {
	return fstest.MapFS{
		"index.html":          {Data: []byte(IndexHTML)},
		"about.html":          {Data: []byte(AboutHTML)},
		"docs/index.html":     {Data: []byte(DocsHTML)},
		"styles/app.css":      {Data: []byte(StylesCSS)},
		"scripts/app.js":      {Data: []byte(ScriptsJS)},
		"js/portfolio.js":     {Data: []byte(PortfolioJS)},
		"favicon.ico":         {Data: []byte(FaviconICO)},
		"images/.placeholder": {Data: []byte{}},
	}
}

// WriteSite writes [SiteFS] under dir.
func WriteSite(t *testing.T, dir string) {
	t.Helper()
	for name, file := range SiteFS() {
		full := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(full, file.Data, 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
}

// FailFS is an [fs.FS] whose every operation fails with Err.
type FailFS struct {
	Err error
}

func (f FailFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: f.Err}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
