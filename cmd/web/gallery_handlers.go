package main

import (
	"net/http"
	"strconv"

	mw "github.com/omoji-tb/caresse-wedding/internal/middleware"
	"github.com/omoji-tb/caresse-wedding/internal/photo"
)

// HomeHandler renders the full invitation page.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "base", buildHomeView(mw.Lang(r)))
}

// GalleryFragHandler renders the gallery grid fragment. The visible count
// travels as a query parameter and is re-validated on every request; `more=1`
// applies the load-more transition server-side.
func GalleryFragHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	site := siteLoader.Get(lang)

	st := photo.NewGalleryState(len(site.Catalog))
	st.ClampVisible(queryInt(r, "visible", st.VisibleCount))
	if r.URL.Query().Get("more") == "1" {
		st.LoadMore()
	}

	renderTemplate(w, r, "frag_gallery_grid", buildGalleryView(lang, site, st))
}

// LightboxFragHandler renders the full-screen viewer fragment and applies the
// prev/next transitions. A failed open guard (index outside the visible
// slice) is a no-op: the fragment responds with no content and the page keeps
// its current state.
func LightboxFragHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r)
	site := siteLoader.Get(lang)

	st := photo.NewGalleryState(len(site.Catalog))
	st.ClampVisible(queryInt(r, "visible", st.VisibleCount))
	if !st.Open(queryInt(r, "i", -1)) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	switch r.URL.Query().Get("nav") {
	case "prev":
		st.Prev()
	case "next":
		st.Next()
	}

	renderTemplate(w, r, "frag_lightbox", buildLightboxView(lang, site, st))
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
