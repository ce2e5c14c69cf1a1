package photo

import "log"

// Record is one hand-curated photo entry as it appears in the site content.
type Record struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Tag   string `yaml:"tag,omitempty"`
	URL   string `yaml:"url"`
}

// Photo is a catalog entry with its resolved fallback chain. Sources is
// non-empty and always ends with the record's canonical URL. Photos are built
// once per content load and never mutated afterwards.
type Photo struct {
	ID      string
	Title   string
	Tag     string
	Sources []string
}

// BuildCatalog expands each record into its source-variant list, derives a
// normalization key, and drops records whose key is empty or already seen.
// Output preserves first-occurrence input order; callers pick the hero and
// featured photos by fixed index into this order.
func BuildCatalog(records []Record) []Photo {
	out := make([]Photo, 0, len(records))
	seen := map[string]struct{}{}
	for _, rec := range records {
		sources := Expand(rec.URL)
		key := rec.ID
		if len(sources) > 0 {
			key = NormalizeKey(sources[0])
		}
		if key == "" {
			log.Printf("photo: dropping record %q: empty normalization key for %q", rec.ID, rec.URL)
			continue
		}
		if _, dup := seen[key]; dup {
			log.Printf("photo: dropping record %q: duplicate of key %q", rec.ID, key)
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Photo{
			ID:      rec.ID,
			Title:   rec.Title,
			Tag:     rec.Tag,
			Sources: sources,
		})
	}
	return out
}
