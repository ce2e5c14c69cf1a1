package main

import (
	"encoding/json"
	"html/template"

	"github.com/omoji-tb/caresse-wedding/internal/content"
	"github.com/omoji-tb/caresse-wedding/internal/i18n"
	"github.com/omoji-tb/caresse-wedding/internal/nav"
	"github.com/omoji-tb/caresse-wedding/internal/photo"
	"github.com/omoji-tb/caresse-wedding/internal/seo"
)

// HomeView aggregates everything the full page render needs.
type HomeView struct {
	Lang    string
	Dir     string
	AltLang string // the other language, for the toggle link
	Site    content.Site
	Meta    seo.Meta
	Nav     []nav.RenderedItem

	Hero     *ImageView
	Featured []FeaturedView
	Gallery  GalleryView
}

// FeaturedView is one entry of the three-photo strip under the hero.
type FeaturedView struct {
	Image ImageView
	Title string
	Tag   string
}

// ImageView renders one resilient image. Src is the first candidate; the full
// fallback chain and the generated placeholder travel in data attributes that
// the gallery script walks on load errors, mirroring the cursor rule.
type ImageView struct {
	Src         string
	Alt         string
	SourcesJSON template.JS // JSON array of remaining candidates
	Placeholder string
	Loading     string // "eager" | "lazy"
	Priority    bool
}

// newImageView builds the image view model for a catalog photo. Priority
// images load eagerly and skip deferred decoding; everything else is lazy.
func newImageView(p photo.Photo, priority bool) ImageView {
	cur := photo.NewCursor(p.Sources, p.Title)
	rest := []string{}
	if len(p.Sources) > 1 {
		rest = p.Sources[1:]
	}
	raw, err := json.Marshal(rest)
	if err != nil {
		raw = []byte("[]")
	}
	loading := "lazy"
	if priority {
		loading = "eager"
	}
	return ImageView{
		Src:         cur.Current(),
		Alt:         p.Title,
		SourcesJSON: template.JS(raw),
		Placeholder: photo.PlaceholderDataURI(p.Title),
		Loading:     loading,
		Priority:    priority,
	}
}

// buildHomeView assembles the page view model for one language.
func buildHomeView(lang string) HomeView {
	site := siteLoader.Get(lang)

	alt := "fa"
	if lang == "fa" {
		alt = "en"
	}

	v := HomeView{
		Lang:    lang,
		Dir:     i18n.Dir(lang),
		AltLang: alt,
		Site:    site,
		Meta: seo.Meta{
			Title:       site.Title + " — " + site.Tagline,
			Description: site.DateCopy,
			OG: seo.OpenGraph{
				Title:       site.Title,
				Description: site.DateCopy,
				Type:        "website",
			},
		},
		Nav:     nav.Build(),
		Gallery: buildGalleryView(lang, site, photo.NewGalleryState(len(site.Catalog))),
	}

	// Catalog order is load-bearing: index 0 is the hero, 1-3 the featured strip.
	if len(site.Catalog) > 0 {
		hero := newImageView(site.Catalog[0], true)
		v.Hero = &hero
		v.Meta.OG.Image = site.Catalog[0].Sources[0]
	}
	for i := 1; i <= 3 && i < len(site.Catalog); i++ {
		p := site.Catalog[i]
		v.Featured = append(v.Featured, FeaturedView{
			Image: newImageView(p, false),
			Title: p.Title,
			Tag:   p.Tag,
		})
	}
	return v
}
