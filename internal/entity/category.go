package entity

// CategoryAll is the listing selector that disables category filtering.
const CategoryAll = "all"

// CategoryUncategorized is the counting bucket for posts whose category
// does not resolve against the registry.
const CategoryUncategorized = "uncategorized"

// Category is one entry of the fixed category registry.
type Category struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Name       string `json:"name"` // Amharic display name
	Color      string `json:"color"`
	Icon       string `json:"icon"`
	Featured   bool   `json:"featured"`
	ComingSoon bool   `json:"comingSoon"`
}

// Registry is the ordered list of known categories.
type Registry []Category

// Resolve looks a category up by internal ID, then by URL slug, then by
// Amharic display name. The second return is false when nothing matches;
// callers treat that as the uncategorized bucket.
func (r Registry) Resolve(key string) (Category, bool) {
	if key == "" {
		return Category{}, false
	}
	for _, c := range r {
		if c.ID == key {
			return c, true
		}
	}
	for _, c := range r {
		if c.Slug == key {
			return c, true
		}
	}
	for _, c := range r {
		if c.Name == key {
			return c, true
		}
	}
	return Category{}, false
}

// DefaultRegistry returns the compiled-in registry used when no registry
// file is configured.
func DefaultRegistry() Registry {
	return Registry{
		{ID: "old-testament", Slug: "old-testament", Name: "ብሉይ ኪዳን", Color: "#8B5E3C", Icon: "scroll", Featured: true},
		{ID: "new-testament", Slug: "new-testament", Name: "አዲስ ኪዳን", Color: "#2C6E49", Icon: "cross", Featured: true},
		{ID: "parables", Slug: "parables", Name: "ምሳሌዎች", Color: "#B08968", Icon: "seedling"},
		{ID: "essays", Slug: "essays", Name: "ጽሑፎች", Color: "#4A5759", Icon: "pen"},
	}
}
