package tagpages

import "strings"

// DefaultsLoader supplies the front-matter defaults a host applies to a
// page created at path.
type DefaultsLoader interface {
	LoadDefaults(path string) (map[string]any, error)
}

// NoDefaults applies no front-matter defaults.
type NoDefaults struct{}

// LoadDefaults returns an empty map.
func (NoDefaults) LoadDefaults(string) (map[string]any, error) {
	return map[string]any{}, nil
}

// ScopedDefaults applies the defaults list of a SiteConfig. Every entry
// whose scope path prefixes the page path contributes its values; later
// entries override earlier ones.
type ScopedDefaults []DefaultSet

// LoadDefaults returns a fresh map, so callers may modify it.
func (d ScopedDefaults) LoadDefaults(path string) (map[string]any, error) {
	out := make(map[string]any)
	for _, set := range d {
		if !scopeMatches(set.Scope.Path, path) {
			continue
		}
		for k, v := range set.Values {
			out[k] = v
		}
	}
	return out, nil
}

// scopeMatches compares whole path segments, so a "tags" scope covers
// /tags/go but not /tagsets.
func scopeMatches(scope, path string) bool {
	scope = strings.Trim(scope, "/")
	if scope == "" {
		return true
	}
	path = strings.Trim(path, "/")
	return path == scope || strings.HasPrefix(path, scope+"/")
}
