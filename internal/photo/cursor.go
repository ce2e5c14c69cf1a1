package photo

import (
	"encoding/base64"
	"fmt"
	"html"
)

// LoadCursor tracks which candidate source a single rendered image instance is
// showing. The index only moves forward; reaching len(sources) is the terminal
// "use placeholder" state and further failures are no-ops. State is local to
// one instance, so a late error for a superseded source cannot corrupt another
// image.
type LoadCursor struct {
	sources []string
	alt     string
	index   int
}

// NewCursor starts a cursor at the first candidate source.
func NewCursor(sources []string, alt string) *LoadCursor {
	return &LoadCursor{sources: sources, alt: alt}
}

// Current returns the URL the instance should display right now: the active
// candidate, or the generated placeholder once every candidate has failed.
func (c *LoadCursor) Current() string {
	if c.index < len(c.sources) {
		return c.sources[c.index]
	}
	return PlaceholderDataURI(c.alt)
}

// Fail records a load failure for the current source and advances to the next
// candidate, clamped at the terminal state.
func (c *LoadCursor) Fail() {
	if c.index < len(c.sources) {
		c.index++
	}
}

// Exhausted reports whether every candidate has failed.
func (c *LoadCursor) Exhausted() bool {
	return c.index >= len(c.sources)
}

// Index exposes the cursor position for diagnostics and tests.
func (c *LoadCursor) Index() int { return c.index }

// PlaceholderDataURI builds an inline SVG that encodes the image's alt text.
// It is generated purely from the text, renders with no network round trip,
// and has no failure modes of its own.
func PlaceholderDataURI(alt string) string {
	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="1200" height="800" viewBox="0 0 1200 800">`+
			`<rect width="1200" height="800" fill="#f4efe9"/>`+
			`<text x="600" y="400" text-anchor="middle" dominant-baseline="middle" `+
			`font-family="Georgia, serif" font-size="42" fill="#8a7a66">%s</text></svg>`,
		html.EscapeString(alt),
	)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
