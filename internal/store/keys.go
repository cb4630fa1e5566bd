package store

import "github.com/tacogips/depot/internal/remote"

// Well-known keys. User-authored templates and shell fragments refer to
// these names, so they must not change.
const (
	KeyRootPath = "DEPOT_ROOT_PATH"

	KeyRemoteRaw      = "DEPOT_REMOTE_RAW"
	KeyRemoteURL      = "DEPOT_REMOTE_URL"
	KeyRemoteScheme   = "DEPOT_REMOTE_SCHEME"
	KeyRemoteUser     = "DEPOT_REMOTE_USER"
	KeyRemoteHost     = "DEPOT_REMOTE_HOST"
	KeyRemotePath     = "DEPOT_REMOTE_PATH"
	KeyRemoteFilename = "DEPOT_REMOTE_FILENAME"
	KeyRemoteStem     = "DEPOT_REMOTE_FILENAME_WITHOUT_EXTENSION"

	KeyLocalPath    = "DEPOT_LOCAL_PATH"
	KeyLocalRelPath = "DEPOT_LOCAL_REL_PATH"
)

// sourcePrefix turns a DEPOT_* key into its DEPOT_SOURCE_* mirror.
const sourcePrefix = "DEPOT_SOURCE_"

// SourceKey returns the move-source mirror of a well-known key.
func SourceKey(key string) string {
	return sourcePrefix + key[len("DEPOT_"):]
}

// SetRootPath records the expanded root directory.
func SetRootPath(s Store, path string) {
	s.Set(KeyRootPath, path)
}

// SetRemoteRaw records the address as typed by the user.
func SetRemoteRaw(s Store, raw string) {
	s.Set(KeyRemoteRaw, raw)
}

// SetRemoteLocator records every field of a parsed address.
func SetRemoteLocator(s Store, loc *remote.Locator) {
	setLocator(s, loc, func(k string) string { return k })
}

// SetLocalPath records the absolute and root-relative local path.
func SetLocalPath(s Store, abs, rel string) {
	s.Set(KeyLocalPath, abs)
	s.Set(KeyLocalRelPath, rel)
}

// SetSourceRemoteRaw is SetRemoteRaw for the move source.
func SetSourceRemoteRaw(s Store, raw string) {
	s.Set(SourceKey(KeyRemoteRaw), raw)
}

// SetSourceRemoteLocator is SetRemoteLocator for the move source.
func SetSourceRemoteLocator(s Store, loc *remote.Locator) {
	setLocator(s, loc, SourceKey)
}

// SetSourceLocalPath is SetLocalPath for the move source.
func SetSourceLocalPath(s Store, abs, rel string) {
	s.Set(SourceKey(KeyLocalPath), abs)
	s.Set(SourceKey(KeyLocalRelPath), rel)
}

func setLocator(s Store, loc *remote.Locator, key func(string) string) {
	s.Set(key(KeyRemoteURL), loc.URL)
	s.Set(key(KeyRemoteScheme), loc.Scheme)
	s.Set(key(KeyRemoteUser), loc.User)
	s.Set(key(KeyRemoteHost), loc.Host)
	s.Set(key(KeyRemotePath), loc.Path)
	s.Set(key(KeyRemoteFilename), loc.Filename)
	s.Set(key(KeyRemoteStem), loc.Stem)
}
