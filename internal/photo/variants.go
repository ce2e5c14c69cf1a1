package photo

import (
	"fmt"
	"net/url"
	"strings"
)

// Two upstream sizing conventions are recognized, both driven purely by
// query-string rewriting. Any other host/path is treated as opaque.
const (
	imageServiceSegment = "/is/image/"
	assetDirSegment     = "/content/dam/"
)

// variantWidths is the descending fallback ladder. The canonical URL itself is
// always appended after these, so exhausting the ladder still leaves a source.
var variantWidths = []int{2200, 1800, 1400, 1100, 900}

// Expand derives an ordered list of candidate URLs for one canonical image URL,
// largest first, ending with the canonical URL as the guaranteed fallback.
// It never fails: unparseable or unrecognized URLs come back as a single-element
// list containing the input unchanged.
func Expand(canonical string) []string {
	u, err := url.Parse(canonical)
	if err != nil || u.Host == "" {
		return []string{canonical}
	}

	var out []string
	seen := map[string]struct{}{}
	add := func(s string) {
		// Dedup on the final URL string; two parameter sets can coincide.
		// The canonical URL is reserved for the tail position.
		if s == canonical {
			return
		}
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	switch {
	case strings.Contains(u.Path, imageServiceSegment):
		for _, w := range variantWidths {
			v := *u
			q := url.Values{}
			q.Set("wid", fmt.Sprintf("%d", w))
			q.Set("fit", "constrain,1")
			v.RawQuery = q.Encode()
			add(v.String())
		}
	case strings.Contains(u.Path, assetDirSegment):
		for _, w := range variantWidths {
			v := *u
			q := url.Values{}
			q.Set("downsize", fmt.Sprintf("%dpx:*", w))
			q.Set("quality", "90")
			q.Set("interpolation", "progressive-bilinear")
			v.RawQuery = q.Encode()
			add(v.String())
		}
	default:
		return []string{canonical}
	}

	out = append(out, canonical)
	return out
}
