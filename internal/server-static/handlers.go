package serverstatic

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const indexPage = "/index.html"

//go:generate options-gen -out-filename=handlers_options.gen.go -from-struct=Options
type Options struct {
	root       string `option:"mandatory" validate:"required,dir"`
	registerer prometheus.Registerer
}

// Handlers serves the files under a fixed document root.
type Handlers struct {
	dir     http.Dir
	files   http.Handler
	metrics *metrics
}

func New(opts Options) (*Handlers, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	h := &Handlers{
		dir:   http.Dir(opts.root),
		files: http.FileServer(http.Dir(opts.root)),
	}

	if opts.registerer != nil {
		m, err := newMetrics(opts.registerer)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %v", err)
		}
		h.metrics = m
	}

	return h, nil
}

// Register mounts the file server on every path and method.
func (h *Handlers) Register(e *echo.Echo) {
	e.Use(NoCache())
	if h.metrics != nil {
		e.Use(h.metrics.middleware())
	}

	e.Any("/*", echo.WrapHandler(http.HandlerFunc(h.serveFiles)))
}

func (h *Handlers) serveFiles(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, indexPage) {
		h.serveIndexPage(w, r)
		return
	}
	h.files.ServeHTTP(w, r)
}

// serveIndexPage serves .../index.html in place. http.FileServer would
// redirect it to the directory.
func (h *Handlers) serveIndexPage(w http.ResponseWriter, r *http.Request) {
	f, err := h.dir.Open(path.Clean(r.URL.Path))
	if err != nil {
		msg, code := toHTTPError(err)
		http.Error(w, msg, code)
		return
	}
	defer f.Close()

	d, err := f.Stat()
	if err != nil {
		msg, code := toHTTPError(err)
		http.Error(w, msg, code)
		return
	}
	if d.IsDir() {
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, d.Name(), d.ModTime(), f)
}

func toHTTPError(err error) (msg string, code int) {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "404 page not found", http.StatusNotFound
	case errors.Is(err, fs.ErrPermission):
		return "403 Forbidden", http.StatusForbidden
	}
	return "500 Internal Server Error", http.StatusInternalServerError
}
