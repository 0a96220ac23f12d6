// Package location normalizes import specifiers into canonical locations.
//
// A location is either a file URL carrying an absolute, percent-encoded path
// (file:///abs/path.ts) or an absolute http(s) URL. Two locations identify the
// same source artifact only if their strings are equal, so every location
// handed to the resolver must come out of Resolve.
package location

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/viant/afs/file"
)

const (
	httpPrefix  = "http://"
	httpsPrefix = "https://"
	filePrefix  = file.Scheme + ":///"
)

// IsRemote reports whether location is an absolute http(s) URL.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, httpPrefix) || strings.HasPrefix(location, httpsPrefix)
}

// IsFile reports whether location is a local file URL.
func IsFile(location string) bool {
	return strings.HasPrefix(location, filePrefix)
}

// Resolve converts specifier, found in the source at base, into a canonical
// location. An empty base resolves relative paths against the working directory.
func Resolve(specifier, base string) (string, error) {
	if IsRemote(specifier) {
		if _, err := url.Parse(specifier); err != nil {
			return "", &ParseError{Location: specifier, Err: err}
		}
		return specifier, nil
	}
	if IsRemote(base) {
		return join(base, specifier)
	}
	return FromPath(specifier, base)
}

// FromPath converts a filesystem path into a file URL. Relative paths found in
// a local source are resolved against base, otherwise against the working directory.
func FromPath(path, base string) (string, error) {
	if IsFile(base) && !filepath.IsAbs(path) {
		return join(base, path)
	}
	resolved := path
	if !filepath.IsAbs(resolved) {
		abs, err := filepath.Abs(resolved)
		if err != nil {
			return "", &ParseError{Location: path, Err: err}
		}
		resolved = abs
	}
	resolved = strings.ReplaceAll(resolved, `\`, "/")
	// drive letter paths (C:/...) need a leading slash to form a valid file URL
	if !strings.HasPrefix(resolved, "/") {
		resolved = "/" + resolved
	}
	URL := &url.URL{Scheme: file.Scheme, Path: resolved}
	return URL.String(), nil
}

// ToPath decodes a file URL into a filesystem path.
func ToPath(location string) (string, error) {
	URL, err := url.Parse(location)
	if err != nil {
		return "", &ParseError{Location: location, Err: err}
	}
	if URL.Scheme != file.Scheme {
		return "", &ParseError{Location: location, Err: errNotFileURL}
	}
	path := URL.Path
	if runtime.GOOS == "windows" && len(path) > 2 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path), nil
}

func join(base, specifier string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", &ParseError{Location: base, Err: err}
	}
	ref, err := url.Parse(specifier)
	if err != nil {
		return "", &ParseError{Location: specifier, Err: err}
	}
	return baseURL.ResolveReference(ref).String(), nil
}
