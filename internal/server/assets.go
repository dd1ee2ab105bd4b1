package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/launchora/internal/shared"
	"golang.org/x/time/rate"
)

// DefaultCacheMaxAge is how long browsers may cache an existing asset.
const DefaultCacheMaxAge = 24 * time.Hour

// contentTypes override the inferred type for these extensions.
var contentTypes = map[string]string{
	".css": "text/css",
	".js":  "application/javascript",
}

// AssetOptions configures an [AssetHandler].
type AssetOptions struct {
	FS          fs.FS
	Index       string        // root index document, default "index.html"
	CacheMaxAge time.Duration // default [DefaultCacheMaxAge]
	Logger      *log.Logger
}

// AssetHandler serves a directory tree of pre-built files with an index fallback.
type AssetHandler struct {
	fsys   fs.FS
	index  string
	maxAge time.Duration
	logger *log.Logger

	// fallbacks samples the "serving fallback" debug line.
	fallbacks *rate.Sometimes
}

// NewAssetHandler creates an [AssetHandler], filling unset options with defaults.
func NewAssetHandler(opts AssetOptions) *AssetHandler {
	if opts.Index == "" {
		opts.Index = "index.html"
	}
	if opts.CacheMaxAge == 0 {
		opts.CacheMaxAge = DefaultCacheMaxAge
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &AssetHandler{
		fsys:      opts.FS,
		index:     opts.Index,
		maxAge:    opts.CacheMaxAge,
		logger:    opts.Logger,
		fallbacks: &rate.Sometimes{First: 5, Interval: time.Minute},
	}
}

// Routes returns the catch-all GET pattern.
func (h *AssetHandler) Routes() []string {
	return []string{"GET /"}
}

// ServeHTTP serves the file the request path resolves to, or the index document when nothing matches.
func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name, err := h.resolve(r.URL.Path)
	switch {
	case err == nil:
		h.serveFile(w, r, name, true)
	case isNotFound(err):
		h.fallbacks.Do(func() {
			h.logger.Debug("serving fallback", "path", r.URL.Path)
		})
		h.serveFile(w, r, h.index, false)
	default:
		h.fail(w, r, err)
	}
}

// resolve maps a URL path to a regular file name in the asset FS.
func (h *AssetHandler) resolve(urlPath string) (string, error) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		name = "."
	}
	if !fs.ValidPath(name) {
		return "", fs.ErrNotExist
	}

	info, err := fs.Stat(h.fsys, name)
	switch {
	case err == nil && info.IsDir():
		return h.regular(path.Join(name, "index.html"))
	case err == nil:
		return name, nil
	case isNotFound(err) && path.Ext(name) == "":
		return h.regular(name + ".html")
	default:
		return "", err
	}
}

func (h *AssetHandler) regular(name string) (string, error) {
	info, err := fs.Stat(h.fsys, name)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fs.ErrNotExist
	}
	return name, nil
}

func (h *AssetHandler) serveFile(w http.ResponseWriter, r *http.Request, name string, cacheable bool) {
	f, err := h.fsys.Open(name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(f)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		content = bytes.NewReader(data)
	}

	if ct, ok := contentTypes[strings.ToLower(path.Ext(name))]; ok {
		w.Header().Set("Content-Type", ct)
	}
	if cacheable {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.maxAge.Seconds())))
	} else {
		w.Header().Set("Cache-Control", "no-cache")
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), content)
}

func (h *AssetHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("asset read failed", "path", r.URL.Path, "err", fmt.Errorf("%w: %v", shared.ErrAssetRead, err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// isNotFound treats "a path component is a file" and over-long names the same as a missing file.
func isNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) || errors.Is(err, syscall.ENAMETOOLONG)
}
