package photo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeyImageService(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "modifier and query stripped",
			url:  "https://cache.example.com/is/image/prod/photo-123:Wide-Hor?wid=1400&fit=constrain,1",
			want: "photo-123",
		},
		{
			name: "bare identifier",
			url:  "https://cache.example.com/is/image/prod/photo-123",
			want: "photo-123",
		},
		{
			name: "case folded",
			url:  "https://cache.example.com/is/image/Prod/Photo-123:Tall",
			want: "photo-123",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.url))
		})
	}
}

func TestNormalizeKeySizeVariantsCollapse(t *testing.T) {
	canonical := "https://cache.example.com/is/image/prod/photo-55:Wide-Hor"
	keys := map[string]bool{}
	for _, v := range Expand(canonical) {
		keys[NormalizeKey(v)] = true
	}
	assert.Len(t, keys, 1, "every size variant of one asset must share a key")
}

func TestNormalizeKeyAssetDirectory(t *testing.T) {
	a := NormalizeKey("https://media.example.com/content/dam/resort/pool.jpg?downsize=900px:*")
	b := NormalizeKey("https://media.example.com/content/dam/resort/pool.jpg?downsize=1400px:*&quality=90")
	assert.Equal(t, "pool.jpg", a)
	assert.Equal(t, a, b)
}

func TestNormalizeKeyOpaqueHost(t *testing.T) {
	got := NormalizeKey("https://Photos.Example.org/Uploads/First-Dance.JPG")
	assert.Equal(t, "photos.example.org/uploads/first-dance.jpg", got)
}

func TestNormalizeKeyMalformed(t *testing.T) {
	assert.Equal(t, "not a url", NormalizeKey("Not A URL?x=1"))
	assert.Equal(t, "", NormalizeKey(""))
}
