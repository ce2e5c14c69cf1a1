package nav

// The page is a single document; navigation targets are section anchors.
// Section ids double as URL fragments for deep links, and the fixed header
// offset is handled in CSS via scroll-margin-top.

// Item represents one entry in the overlay navigation bar.
type Item struct {
	SectionID string // e.g. "gallery"
	LabelKey  string // i18n key, e.g. "nav.gallery"
}

// RenderedItem is the view model for templates.
type RenderedItem struct {
	Href     string
	ID       string
	LabelKey string
}

// Sections is the primary navigation definition, in page order.
var Sections = []Item{
	{SectionID: "story", LabelKey: "nav.story"},
	{SectionID: "schedule", LabelKey: "nav.schedule"},
	{SectionID: "travel", LabelKey: "nav.travel"},
	{SectionID: "gallery", LabelKey: "nav.gallery"},
}

// Build renders the anchor navigation items.
func Build() []RenderedItem {
	items := make([]RenderedItem, 0, len(Sections))
	for _, it := range Sections {
		items = append(items, RenderedItem{
			Href:     "#" + it.SectionID,
			ID:       it.SectionID,
			LabelKey: it.LabelKey,
		})
	}
	return items
}

// IsSection reports whether id names a known page section; unknown fragment
// targets are ignored rather than scrolled to.
func IsSection(id string) bool {
	for _, it := range Sections {
		if it.SectionID == id {
			return true
		}
	}
	return false
}
