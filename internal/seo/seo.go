package seo

// OpenGraph holds the og: tags for link previews of the invitation.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
}

// Meta is the head metadata view model.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	OG          OpenGraph
}
