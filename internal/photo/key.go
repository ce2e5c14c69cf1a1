package photo

import (
	"net/url"
	"strings"
)

// NormalizeKey derives a stable identity for an image URL, independent of the
// sizing query parameters, so differently sized URLs of the same photo collapse
// to one key. It never fails; a URL that cannot be parsed falls back to the raw
// string truncated at its query.
func NormalizeKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		key := raw
		if q := strings.IndexByte(key, '?'); q != -1 {
			key = key[:q]
		}
		return strings.ToLower(key)
	}

	// u.Path is already percent-decoded.
	p := strings.ToLower(u.Path)

	if i := strings.Index(p, imageServiceSegment); i != -1 {
		// The final component after /is/image/ is the asset's service
		// identifier; a ":Modifier" suffix and the query are sizing detail.
		rest := p[i+len(imageServiceSegment):]
		key := rest
		if s := strings.LastIndexByte(key, '/'); s != -1 {
			key = key[s+1:]
		}
		if c := strings.IndexByte(key, ':'); c != -1 {
			key = key[:c]
		}
		if q := strings.IndexByte(key, '?'); q != -1 {
			key = key[:q]
		}
		return key
	}

	if strings.Contains(p, assetDirSegment) {
		key := p
		if s := strings.LastIndexByte(key, '/'); s != -1 {
			key = key[s+1:]
		}
		return key
	}

	return strings.ToLower(u.Host) + p
}
