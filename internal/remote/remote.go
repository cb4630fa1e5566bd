// Package remote parses addresses into remote locators.
//
// Supported address forms:
//   - scheme://user@host/path (any absolute URL)
//   - user@host:path (SCP-like, rewritten to ssh://user@host/path)
//   - host/path or path (resolved against the default scheme and host)
package remote

import (
	"net/url"
	"regexp"
	"strings"
)

// Default base used when the configuration does not name one.
const (
	DefaultScheme = "depot"
	DefaultHost   = "localhost"
)

var scpPattern = regexp.MustCompile(`^(\w+)@([\w.]+):(.+)$`)

// Locator is the decomposition of an address.
type Locator struct {
	// URL is the normalized URL string.
	URL string
	// Scheme is the URL scheme (e.g. "https", "ssh").
	Scheme string
	// User is the user name, empty when absent.
	User string
	// Host is the host name without port.
	Host string
	// Path is the URL path including the leading '/'.
	Path string
	// Filename is the last path segment.
	Filename string
	// Stem is Filename without its extension.
	Stem string
}

// Parser parses addresses relative to a default scheme and host.
type Parser struct {
	Scheme string
	Host   string
}

// NewParser returns a Parser, substituting defaults for empty values.
func NewParser(scheme, host string) *Parser {
	if scheme == "" {
		scheme = DefaultScheme
	}
	if host == "" {
		host = DefaultHost
	}
	return &Parser{Scheme: scheme, Host: host}
}

// Parse converts an address into a Locator.
func (p *Parser) Parse(address string) (*Locator, error) {
	if strings.TrimSpace(address) == "" {
		return nil, newParseError(address, "address cannot be empty", nil)
	}

	converted := scpPattern.ReplaceAllString(address, "ssh://$1@$2/$3")

	base, err := url.Parse(p.Scheme + "://" + p.Host + "/")
	if err != nil {
		return nil, newParseError(address, "invalid default scheme or host", err)
	}
	ref, err := url.Parse(converted)
	if err != nil {
		return nil, newParseError(address, "invalid address", err)
	}

	return FromURL(base.ResolveReference(ref)), nil
}

// FromURL decomposes an already parsed URL.
func FromURL(u *url.URL) *Locator {
	path := u.EscapedPath()
	filename := path
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		filename = path[idx+1:]
	}
	stem := filename
	if idx := strings.LastIndex(filename, "."); idx >= 0 {
		stem = filename[:idx]
	}

	return &Locator{
		URL:      u.String(),
		Scheme:   u.Scheme,
		User:     u.User.Username(),
		Host:     u.Hostname(),
		Path:     path,
		Filename: filename,
		Stem:     stem,
	}
}
