package handlers

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "audio-relay/internal/api/errors"
)

// StaticHandler serves pages and assets out of an fs.FS
type StaticHandler struct {
	files fs.FS
}

// NewStaticHandler creates a new static file handler over files
func NewStaticHandler(files fs.FS) *StaticHandler {
	return &StaticHandler{
		files: files,
	}
}

// Page returns a handler that always serves the named file
func (h *StaticHandler) Page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.serveFile(c, name)
	}
}

// ServeStatic serves any file from the root of the FS. It is meant to be
// installed as the NoRoute handler.
func (h *StaticHandler) ServeStatic(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(c.Request.URL.Path))
		return
	}

	// Clean the path and remove the leading slash
	name := strings.TrimPrefix(path.Clean("/"+c.Request.URL.Path), "/")
	if name == "" {
		name = "index.html"
	}

	h.serveFile(c, name)
}

// serveFile serves a specific file with a content type derived from its name
func (h *StaticHandler) serveFile(c *gin.Context, name string) {
	data, err := fs.ReadFile(h.files, name)
	if err != nil {
		// Missing files and directories both end up here
		if !errors.Is(err, fs.ErrNotExist) {
			_ = c.Error(err)
		}
		c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(name))
		return
	}

	// Set caching headers for static assets
	if !strings.HasSuffix(name, ".html") {
		c.Header("Cache-Control", "public, max-age=3600")
	}

	c.Data(http.StatusOK, getContentType(name), data)
}

// getContentType returns the appropriate content type for a file
func getContentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))

	switch ext {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript"
	case ".json":
		return "application/json"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".svg":
		return "image/svg+xml"
	case ".ico":
		return "image/x-icon"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	default:
		return "application/octet-stream"
	}
}
