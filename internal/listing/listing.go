// Package listing narrows, orders and pages the post collection for
// listing views.
package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/eyoab/tarikoch/internal/entity"
)

// DefaultPageSize matches the reference listing grid.
const DefaultPageSize = 9

// Page is one slice of the filtered, sorted collection.
type Page struct {
	Posts      []entity.Post
	Page       int
	PageSize   int
	TotalPosts int
	TotalPages int
}

// Counts aggregates published posts per resolved category, independent of
// the active category/search filters, so filter controls can always show
// full counts.
type Counts struct {
	Total      int
	ByCategory map[string]int
}

// Result is the full outcome of a listing run.
type Result struct {
	Page   Page
	Counts Counts
}

// Run applies the pipeline: publish filter, category counts over the
// publish-filtered set, then category filter, search filter, sort and
// pagination.
func Run(posts []entity.Post, registry entity.Registry, params entity.ListParams, pageSize int) Result {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	published := Published(posts)
	counts := CountByCategory(published, registry)

	filtered := FilterCategory(published, registry, params.Category)
	filtered = FilterSearch(filtered, params.Query)
	sorted := Sort(filtered, params.Sort)

	return Result{
		Page:   Paginate(sorted, params.Page, pageSize),
		Counts: counts,
	}
}

// Published drops posts with Published == false.
func Published(posts []entity.Post) []entity.Post {
	kept := make([]entity.Post, 0, len(posts))

	for _, p := range posts {
		if p.Published {
			kept = append(kept, p)
		}
	}

	return kept
}

// FilterCategory keeps posts whose resolved category matches the selector.
// The selector itself may be a registry ID, slug or Amharic name; the
// CategoryAll sentinel keeps everything. An unresolvable selector matches
// nothing.
func FilterCategory(posts []entity.Post, registry entity.Registry, selector string) []entity.Post {
	if selector == entity.CategoryAll || selector == "" {
		return posts
	}

	want, ok := registry.Resolve(selector)

	if !ok {
		return []entity.Post{}
	}

	kept := make([]entity.Post, 0, len(posts))

	for _, p := range posts {
		if cat, ok := registry.Resolve(p.Category); ok && cat.ID == want.ID {
			kept = append(kept, p)
		}
	}

	return kept
}

// FilterSearch keeps posts where the query is a case-insensitive substring
// of the title, the description or any tag. An empty query keeps
// everything.
func FilterSearch(posts []entity.Post, query string) []entity.Post {
	query = strings.ToLower(strings.TrimSpace(query))

	if query == "" {
		return posts
	}

	kept := make([]entity.Post, 0, len(posts))

	for _, p := range posts {
		if matchesQuery(p, query) {
			kept = append(kept, p)
		}
	}

	return kept
}

func matchesQuery(p entity.Post, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}

	if p.Description != "" && strings.Contains(strings.ToLower(p.Description), query) {
		return true
	}

	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}

// Sort orders a copy of the posts by the given mode. date-asc is defined
// as the reverse of the date-desc result rather than an independent
// ascending sort, so its tie-break order is inherited, not re-derived.
func Sort(posts []entity.Post, mode string) []entity.Post {
	sorted := make([]entity.Post, len(posts))
	copy(sorted, posts)

	switch mode {
	case entity.SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date.After(sorted[j].Date)
		})
		reverse(sorted)
	case entity.SortTitleAsc:
		c := titleCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	case entity.SortTitleDesc:
		c := titleCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Title, sorted[j].Title) > 0
		})
	default: // SortDateDesc
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date.After(sorted[j].Date)
		})
	}

	return sorted
}

// titleCollator builds an Amharic collator per call; collators are not
// safe for concurrent use.
func titleCollator() *collate.Collator {
	return collate.New(language.Amharic)
}

func reverse(posts []entity.Post) {
	for i, j := 0, len(posts)-1; i < j; i, j = i+1, j-1 {
		posts[i], posts[j] = posts[j], posts[i]
	}
}

// Paginate slices out the 1-based page. A page beyond the last yields an
// empty slice. Pages below 1 are the caller's responsibility to normalize.
func Paginate(posts []entity.Post, page, pageSize int) Page {
	total := len(posts)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize

	var slice []entity.Post

	switch {
	case start >= total || start < 0:
		slice = []entity.Post{}
	case end > total:
		slice = posts[start:total]
	default:
		slice = posts[start:end]
	}

	return Page{
		Posts:      slice,
		Page:       page,
		PageSize:   pageSize,
		TotalPosts: total,
		TotalPages: totalPages,
	}
}

// CountByCategory aggregates the publish-filtered collection per resolved
// category ID, with unresolvable categories counted under uncategorized.
func CountByCategory(published []entity.Post, registry entity.Registry) Counts {
	byCategory := make(map[string]int, len(registry)+1)

	for _, p := range published {
		if cat, ok := registry.Resolve(p.Category); ok {
			byCategory[cat.ID]++
		} else {
			byCategory[entity.CategoryUncategorized]++
		}
	}

	return Counts{
		Total:      len(published),
		ByCategory: byCategory,
	}
}
