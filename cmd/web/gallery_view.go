package main

import (
	"fmt"
	"strconv"

	"github.com/omoji-tb/caresse-wedding/internal/content"
	"github.com/omoji-tb/caresse-wedding/internal/format"
	"github.com/omoji-tb/caresse-wedding/internal/i18n"
	"github.com/omoji-tb/caresse-wedding/internal/photo"
)

// GalleryView is the grid fragment view model: the visible slice of the
// catalog plus the load-more control state.
type GalleryView struct {
	Lang         string
	Dir          string
	VisibleCount int
	Total        int
	CanLoadMore  bool
	LoadMoreURL  string
	Items        []GalleryItemView
}

// GalleryItemView is one tile of the grid.
type GalleryItemView struct {
	Index       int
	Title       string
	Tag         string
	Image       ImageView
	LightboxURL string
}

// LightboxView is the full-screen viewer fragment view model.
type LightboxView struct {
	Lang    string
	Dir     string
	Index   int
	Visible int
	Counter string // localized 1-based "index / total" readout
	Title   string
	Tag     string
	Image   ImageView
	PrevURL string
	NextURL string
}

// buildGalleryView renders the visible slice for the given state.
func buildGalleryView(lang string, site content.Site, st photo.GalleryState) GalleryView {
	v := GalleryView{
		Lang:         lang,
		Dir:          i18n.Dir(lang),
		VisibleCount: st.VisibleCount,
		Total:        st.CatalogLen,
		CanLoadMore:  st.CanLoadMore(),
		LoadMoreURL:  fmt.Sprintf("/gallery?visible=%d&more=1", st.VisibleCount),
	}
	for i := 0; i < st.VisibleCount && i < len(site.Catalog); i++ {
		p := site.Catalog[i]
		v.Items = append(v.Items, GalleryItemView{
			Index:       i,
			Title:       p.Title,
			Tag:         p.Tag,
			Image:       newImageView(p, false),
			LightboxURL: lightboxURL(i, st.VisibleCount, ""),
		})
	}
	return v
}

// buildLightboxView renders the open viewer at the state's lightbox index.
func buildLightboxView(lang string, site content.Site, st photo.GalleryState) LightboxView {
	p := site.Catalog[st.Lightbox]
	cur, total := st.Counter()
	counter := format.Digits(strconv.Itoa(cur), lang) + " / " + format.Digits(strconv.Itoa(total), lang)
	return LightboxView{
		Lang:    lang,
		Dir:     i18n.Dir(lang),
		Index:   st.Lightbox,
		Visible: st.VisibleCount,
		Counter: counter,
		Title:   p.Title,
		Tag:     p.Tag,
		Image:   newImageView(p, true),
		PrevURL: lightboxURL(st.Lightbox, st.VisibleCount, "prev"),
		NextURL: lightboxURL(st.Lightbox, st.VisibleCount, "next"),
	}
}

func lightboxURL(index, visible int, navAction string) string {
	u := fmt.Sprintf("/gallery/lightbox?i=%d&visible=%d", index, visible)
	if navAction != "" {
		u += "&nav=" + navAction
	}
	return u
}
