// Package sniff detects media types for local files: a fast extension map
// for common formats, the platform mime table next, and a content sniff of
// the first 512 bytes as the fallback.
package sniff

import (
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// sniffLen is how many leading bytes content detection looks at.
const sniffLen = 512

// extTypes maps well-known extensions to media types, checked before the
// platform mime table so results do not depend on the host's mime.types.
var extTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".pdf":  "application/pdf",
	".json": "application/json",
	".xml":  "application/xml",
	".zip":  "application/zip",
	".txt":  "text/plain",
	".md":   "text/markdown",
	".html": "text/html",
	".css":  "text/css",
	".csv":  "text/csv",
}

// Detector implements path-based media type detection.
type Detector struct{}

// New returns a Detector.
func New() *Detector {
	return &Detector{}
}

// Detect returns the media type for path.
func (d *Detector) Detect(path string) (string, error) {
	return Detect(path)
}

// Detect resolves the media type of the file at path. Extension lookups
// never touch the file; unknown extensions fall back to reading the first
// 512 bytes. The result carries no parameters (no "; charset=...").
func Detect(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := extTypes[ext]; ok {
		return t, nil
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return stripParams(t), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	buf := make([]byte, sniffLen)
	n, _ := f.Read(buf)
	return DetectBytes(buf[:n]), nil
}

// DetectBytes sniffs the media type from a content prefix. Always returns
// a valid type; unrecognized content is application/octet-stream.
func DetectBytes(data []byte) string {
	return stripParams(http.DetectContentType(data))
}

func stripParams(mimeType string) string {
	if parsed, _, err := mime.ParseMediaType(mimeType); err == nil {
		return parsed
	}
	base, _, _ := strings.Cut(mimeType, ";")
	return strings.TrimSpace(base)
}
