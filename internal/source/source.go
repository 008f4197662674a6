// Package source retrieves schema documents. Retrieval is a one-shot
// blocking call that happens strictly before resolution starts; the raw
// text it produces is parsed into the grammar model exactly once.
package source

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// utf8BOM is stripped from document heads before parsing.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// IsURL reports whether the location is an http(s) URL.
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Fetch retrieves one document from a file path or an http(s) URL.
func Fetch(location string) ([]byte, error) {
	if IsURL(location) {
		return fetchURL(location)
	}

	log.WithField("path", location).Debug("reading schema document")

	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", location, err)
	}

	return StripBOM(data), nil
}

func fetchURL(location string) ([]byte, error) {
	log.WithField("url", location).Debug("fetching schema document")

	resp, err := http.Get(location)
	if err != nil {
		return nil, fmt.Errorf("fetching schema %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching schema %s: unexpected status %s", location, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", location, err)
	}

	return StripBOM(data), nil
}

// FromString returns raw schema text ready for parsing.
func FromString(text string) []byte {
	return StripBOM([]byte(text))
}

// StripBOM removes an optional UTF-8 byte-order-mark.
func StripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, utf8BOM)
}

// Sibling resolves an import location relative to the document it appears
// in. Absolute URLs and paths pass through unchanged.
func Sibling(base, location string) string {
	if IsURL(location) {
		return location
	}

	if IsURL(base) {
		u, err := url.Parse(base)
		if err != nil {
			return location
		}

		u.Path = path.Join(path.Dir(u.Path), location)

		return u.String()
	}

	if base == "" || filepath.IsAbs(location) {
		return location
	}

	return filepath.Join(filepath.Dir(base), location)
}
