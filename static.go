package rhttp

import (
	"context"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultStaticMount is the mount path used when RegisterStaticRoot is given
// an empty one.
const DefaultStaticMount = "/static"

// DefaultStaticDir is the directory used when RegisterStaticRoot is given an
// empty one.
const DefaultStaticDir = "static"

// staticContentTypes maps file extensions the static handler recognizes
// directly; anything else falls back to mime.TypeByExtension.
var staticContentTypes = map[string]string{
	".js":   "text/javascript",
	".mjs":  "text/javascript",
	".css":  "text/css; charset=utf-8",
	".html": "text/html; charset=utf-8",
	".json": "application/json",
	".txt":  "text/plain; charset=utf-8",
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".ico":  "image/x-icon",
}

// RegisterStaticRoot registers one GET route at mountPath+"/:path*" that
// serves files from directoryName. Empty arguments default to
// [DefaultStaticMount] and [DefaultStaticDir]. The wildcard capture is
// resolved as a relative path under the directory; the resolved path is
// canonicalized and must stay inside it, so traversal sequences cannot escape
// the root. Every failure to open the target (missing, permission denied, a
// directory, an escape attempt) collapses to a 404 with body "Not Found".
// Served files stream lazily: the file is the response body and is closed by
// [ToStd] once written.
func (t *RouteTable) RegisterStaticRoot(mountPath, directoryName string) error {
	if mountPath == "" {
		mountPath = DefaultStaticMount
	}

	if directoryName == "" {
		directoryName = DefaultStaticDir
	}

	return t.Register(http.MethodGet, mountPath+"/:path*", staticHandler(directoryName))
}

func staticHandler(root string) HandlerFunc {
	return func(_ context.Context, c *Context) (*Response, error) {
		name, ok := resolveWithin(root, c.Params.Pathname["path"])
		if !ok {
			return staticNotFound(), nil
		}

		file, err := os.Open(name)
		if err != nil {
			return staticNotFound(), nil
		}

		info, err := file.Stat()
		if err != nil || info.IsDir() {
			file.Close()
			return staticNotFound(), nil
		}

		resp := NewResponse(http.StatusOK)
		resp.Body = file
		if ct := contentTypeFor(name); ct != "" {
			resp.Header.Set("Content-Type", ct)
		}

		return resp, nil
	}
}

// resolveWithin joins rel onto root and reports whether the result still
// lives inside root after canonicalization.
func resolveWithin(root, rel string) (string, bool) {
	if strings.ContainsRune(rel, 0) {
		return "", false
	}

	// cleaning the rooted slash-path collapses any ".." before the join
	full := filepath.Join(root, filepath.FromSlash(path.Clean("/"+rel)))

	base := filepath.Clean(root)
	if full != base && !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", false
	}

	return full, true
}

func contentTypeFor(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if ct, ok := staticContentTypes[ext]; ok {
		return ct
	}

	return mime.TypeByExtension(ext)
}

func staticNotFound() *Response {
	return Text(http.StatusNotFound, "Not Found")
}
