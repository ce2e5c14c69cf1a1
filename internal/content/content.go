package content

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/omoji-tb/caresse-wedding/internal/photo"
)

// Site is the full localized content table for the invitation page. It is
// loaded once per language and never mutated at runtime; the photo catalog is
// derived from it at load time.
type Site struct {
	Lang     string         `yaml:"-"`
	Title    string         `yaml:"title"`
	Tagline  string         `yaml:"tagline"`
	Couple   Couple         `yaml:"couple"`
	DateCopy string         `yaml:"date_copy"`
	Venue    Venue          `yaml:"venue"`
	Cards    []Card         `yaml:"cards"`
	Days     []Day          `yaml:"itinerary"`
	Travel   []Note         `yaml:"travel"`
	Photos   []photo.Record `yaml:"photos"`
	// Extras holds variant-only additions (the second hand-curated list of the
	// original site); it is merged after Photos and deduplicated with them.
	Extras []photo.Record `yaml:"extra_photos,omitempty"`

	// Catalog is derived from Photos+Extras at load time.
	Catalog []photo.Photo `yaml:"-"`
}

// Couple names the two partners as they appear in the hero section.
type Couple struct {
	Partner1 string `yaml:"partner1"`
	Partner2 string `yaml:"partner2"`
}

// Venue describes the resort, including the one outbound link on the page.
type Venue struct {
	Name string `yaml:"name"`
	City string `yaml:"city"`
	URL  string `yaml:"url"`
}

// Card is one informational card (dress code, gifts, children, ...).
type Card struct {
	Icon  string `yaml:"icon,omitempty"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Day groups the itinerary events of one day of the weekend.
type Day struct {
	Label  string  `yaml:"label"`
	Date   string  `yaml:"date"`
	Events []Event `yaml:"events"`
}

// Event is a single itinerary entry.
type Event struct {
	Time   string `yaml:"time"`
	Title  string `yaml:"title"`
	Detail string `yaml:"detail,omitempty"`
}

// Note is one travel-notes block; Body is authored as markdown and rendered
// to sanitized HTML at load time.
type Note struct {
	Title    string        `yaml:"title"`
	Body     string        `yaml:"body"`
	BodyHTML template.HTML `yaml:"-"`
}

// Loader reads and caches localized site content from a directory of
// site.<lang>.yaml files, degrading to built-in fallback content when a file
// is missing or broken.
type Loader struct {
	dir string

	mu    sync.RWMutex
	cache map[string]cacheEntry
	ttl   time.Duration
}

type cacheEntry struct {
	site    Site
	expires time.Time
}

// NewLoader builds a Loader over dir (default "content").
func NewLoader(dir string) *Loader {
	if strings.TrimSpace(dir) == "" {
		dir = "content"
	}
	return &Loader{dir: dir, cache: map[string]cacheEntry{}, ttl: 5 * time.Minute}
}

// Get returns the content table for lang. Failures never surface to callers:
// a missing or malformed file falls back to the built-in table for that
// language (or English).
func (l *Loader) Get(lang string) Site {
	lang = normalizeLang(lang)

	l.mu.RLock()
	if e, ok := l.cache[lang]; ok && time.Now().Before(e.expires) {
		l.mu.RUnlock()
		return e.site
	}
	l.mu.RUnlock()

	site, err := l.load(lang)
	if err != nil {
		log.Printf("content: %v; using built-in %s content", err, lang)
		site = fallbackSite(lang)
	}
	finalize(&site, lang)

	l.mu.Lock()
	l.cache[lang] = cacheEntry{site: site, expires: time.Now().Add(l.ttl)}
	l.mu.Unlock()
	return site
}

func (l *Loader) load(lang string) (Site, error) {
	path := filepath.Join(l.dir, "site."+lang+".yaml")
	raw, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("read %s: %w", path, err)
	}
	var site Site
	if err := yaml.Unmarshal(raw, &site); err != nil {
		return Site{}, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return site, nil
}

// finalize derives the runtime fields: rendered travel notes and the
// deduplicated photo catalog.
func finalize(site *Site, lang string) {
	site.Lang = lang
	for i := range site.Travel {
		site.Travel[i].BodyHTML = renderMarkdown(site.Travel[i].Body)
	}
	records := make([]photo.Record, 0, len(site.Photos)+len(site.Extras))
	records = append(records, site.Photos...)
	records = append(records, site.Extras...)
	site.Catalog = photo.BuildCatalog(records)
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "en"
	}
	if i := strings.IndexByte(lang, '-'); i != -1 {
		lang = lang[:i]
	}
	return lang
}

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	sanitize = bluemonday.UGCPolicy()
)

// renderMarkdown converts a markdown body to sanitized HTML. A body that
// fails to render comes back escaped rather than dropped.
func renderMarkdown(body string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(body), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(body))
	}
	return template.HTML(sanitize.SanitizeBytes(buf.Bytes()))
}
