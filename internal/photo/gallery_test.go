package photo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryInitialPage(t *testing.T) {
	s := NewGalleryState(30)
	assert.Equal(t, PageSize, s.VisibleCount)
	assert.False(t, s.IsOpen())
	assert.True(t, s.CanLoadMore())

	small := NewGalleryState(5)
	assert.Equal(t, 5, small.VisibleCount)
	assert.False(t, small.CanLoadMore())
}

func TestGalleryLoadMoreMonotonicAndBounded(t *testing.T) {
	s := NewGalleryState(30)
	prev := s.VisibleCount
	for i := 0; i < 6; i++ {
		s.LoadMore()
		require.GreaterOrEqual(t, s.VisibleCount, prev)
		require.LessOrEqual(t, s.VisibleCount, 30)
		prev = s.VisibleCount
	}
	assert.Equal(t, 30, s.VisibleCount)
	assert.False(t, s.CanLoadMore())
}

func TestGalleryOpenGuards(t *testing.T) {
	s := NewGalleryState(30)
	assert.False(t, s.Open(-1))
	assert.False(t, s.Open(PageSize), "index beyond the visible slice must not open")
	assert.True(t, s.Open(3))
	assert.True(t, s.IsOpen())
	assert.False(t, s.Open(4), "open is only valid from the closed state")
	s.Close()
	assert.False(t, s.IsOpen())
}

func TestGalleryPrevWrapsAround(t *testing.T) {
	s := NewGalleryState(5)
	require.True(t, s.Open(0))
	s.Prev()
	assert.Equal(t, 4, s.Lightbox)
}

func TestGalleryCyclicIdentity(t *testing.T) {
	s := NewGalleryState(7)
	for start := 0; start < 7; start++ {
		s = NewGalleryState(7)
		require.True(t, s.Open(start))
		for i := 0; i < s.VisibleCount; i++ {
			s.Next()
		}
		assert.Equal(t, start, s.Lightbox, "n nexts from %d must return to start", start)
		s.Prev()
		s.Next()
		assert.Equal(t, start, s.Lightbox, "prev then next must be identity")
	}
}

func TestGallerySingleItemNavigation(t *testing.T) {
	s := NewGalleryState(1)
	require.True(t, s.Open(0))
	s.Next()
	assert.Equal(t, 0, s.Lightbox)
	s.Prev()
	assert.Equal(t, 0, s.Lightbox)
}

func TestGalleryNavigationClosedIsNoop(t *testing.T) {
	s := NewGalleryState(5)
	s.Next()
	s.Prev()
	assert.False(t, s.IsOpen())
}

func TestGalleryCounter(t *testing.T) {
	s := NewGalleryState(20)
	require.True(t, s.Open(4))
	cur, total := s.Counter()
	assert.Equal(t, 5, cur)
	assert.Equal(t, PageSize, total)
}

func TestGalleryClampVisible(t *testing.T) {
	s := NewGalleryState(30)
	s.ClampVisible(100)
	assert.Equal(t, 30, s.VisibleCount)
	s.ClampVisible(3)
	assert.Equal(t, PageSize, s.VisibleCount)
	s.ClampVisible(24)
	assert.Equal(t, 24, s.VisibleCount)
}
