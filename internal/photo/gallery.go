package photo

// PageSize is how many catalog entries one "load more" reveals.
const PageSize = 12

// lightboxClosed marks the closed lightbox state.
const lightboxClosed = -1

// GalleryState is the view state for the gallery grid and its lightbox over a
// catalog of CatalogLen entries. VisibleCount only grows and never exceeds
// CatalogLen; Lightbox, when open, always indexes into the visible slice.
type GalleryState struct {
	CatalogLen   int
	VisibleCount int
	Lightbox     int
}

// NewGalleryState starts with the first page visible and the lightbox closed.
func NewGalleryState(catalogLen int) GalleryState {
	s := GalleryState{CatalogLen: catalogLen, Lightbox: lightboxClosed}
	s.VisibleCount = min(PageSize, catalogLen)
	return s
}

// ClampVisible restores an externally supplied visible count to a valid value.
// Requests carry the count as a query parameter, so it must be re-validated on
// every transition.
func (s *GalleryState) ClampVisible(visible int) {
	if visible < min(PageSize, s.CatalogLen) {
		visible = min(PageSize, s.CatalogLen)
	}
	if visible > s.CatalogLen {
		visible = s.CatalogLen
	}
	s.VisibleCount = visible
}

// CanLoadMore reports whether hidden entries remain; the control is only
// offered while this holds.
func (s GalleryState) CanLoadMore() bool {
	return s.VisibleCount < s.CatalogLen
}

// LoadMore reveals the next page, bounded by the catalog length.
func (s *GalleryState) LoadMore() {
	s.VisibleCount = min(s.VisibleCount+PageSize, s.CatalogLen)
}

// IsOpen reports whether the lightbox is showing a photo.
func (s GalleryState) IsOpen() bool {
	return s.Lightbox != lightboxClosed
}

// Open shows the lightbox at index i of the visible slice. Out-of-range
// indexes fail the guard and the transition is simply not performed.
func (s *GalleryState) Open(i int) bool {
	if s.IsOpen() || i < 0 || i >= s.VisibleCount {
		return false
	}
	s.Lightbox = i
	return true
}

// Close dismisses the lightbox unconditionally.
func (s *GalleryState) Close() {
	s.Lightbox = lightboxClosed
}

// Prev moves to the previous visible photo with cyclic wraparound. A no-op
// while closed; with one visible photo it stays in place.
func (s *GalleryState) Prev() {
	if !s.IsOpen() || s.VisibleCount == 0 {
		return
	}
	s.Lightbox = (s.Lightbox - 1 + s.VisibleCount) % s.VisibleCount
}

// Next moves to the following visible photo with cyclic wraparound.
func (s *GalleryState) Next() {
	if !s.IsOpen() || s.VisibleCount == 0 {
		return
	}
	s.Lightbox = (s.Lightbox + 1) % s.VisibleCount
}

// Counter returns the 1-based "index / total" readout for the lightbox.
func (s GalleryState) Counter() (current, total int) {
	if !s.IsOpen() {
		return 0, s.VisibleCount
	}
	return s.Lightbox + 1, s.VisibleCount
}
