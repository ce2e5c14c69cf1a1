package photo

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandImageService(t *testing.T) {
	canonical := "https://cache.example.com/is/image/prod/photo-123:Wide-Hor"
	got := Expand(canonical)

	require.GreaterOrEqual(t, len(got), 2, "expected sized variants plus the canonical URL")
	assert.Equal(t, canonical, got[len(got)-1], "canonical URL must be the final fallback")
	for _, v := range got[:len(got)-1] {
		assert.Contains(t, v, "wid=", "sized variant should rewrite the width parameter: %s", v)
		assert.Contains(t, v, "fit=constrain", "sized variant should constrain fit: %s", v)
	}
}

func TestExpandAssetDirectory(t *testing.T) {
	canonical := "https://media.example.com/content/dam/resort/pool-sunset.jpg"
	got := Expand(canonical)

	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, canonical, got[len(got)-1])
	for _, v := range got[:len(got)-1] {
		assert.Contains(t, v, "downsize=")
		assert.Contains(t, v, "quality=90")
	}
}

func TestExpandWidthsDescend(t *testing.T) {
	got := Expand("https://cache.example.com/is/image/prod/photo-9")
	require.Len(t, got, len(variantWidths)+1)
	for i, w := range variantWidths {
		assert.Contains(t, got[i], "wid="+strconv.Itoa(w))
	}
}

func TestExpandUnrecognizedHost(t *testing.T) {
	canonical := "https://photos.example.org/uploads/first-dance.jpg"
	assert.Equal(t, []string{canonical}, Expand(canonical))
}

func TestExpandMalformedURL(t *testing.T) {
	for _, raw := range []string{"", "::not a url::", "http://%zz"} {
		got := Expand(raw)
		require.Len(t, got, 1, "malformed input must fail open: %q", raw)
		assert.Equal(t, raw, got[0])
	}
}

func TestExpandNoDuplicateStrings(t *testing.T) {
	got := Expand("https://cache.example.com/is/image/prod/photo-1:Tall")
	seen := map[string]bool{}
	for _, v := range got {
		assert.False(t, seen[v], "duplicate candidate %s", v)
		seen[v] = true
	}
}

func TestExpandCanonicalAlwaysLastEvenWhenSized(t *testing.T) {
	// A canonical URL that already matches one of the generated variants must
	// still appear exactly once, in the tail position.
	base := "https://cache.example.com/is/image/prod/photo-7"
	sized := Expand(base)[0]
	got := Expand(sized)
	assert.Equal(t, sized, got[len(got)-1])
	count := 0
	for _, v := range got {
		if v == sized {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
