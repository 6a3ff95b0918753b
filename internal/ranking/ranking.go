// Package ranking computes related and adjacent posts for detail pages.
package ranking

import (
	"sort"

	"github.com/eyoab/tarikoch/internal/entity"
)

// DefaultRelatedLimit is the number of related posts suggested when the
// caller does not override it.
const DefaultRelatedLimit = 3

const (
	categoryMatchScore = 10
	sharedTagScore     = 2
)

// ScoredPost pairs a post with its relevance score relative to a current
// post.
type ScoredPost struct {
	Post  entity.Post
	Score int
}

// Related scores every other published post against the current one:
// +10 for a matching resolved category, +2 per shared tag (exact,
// case-sensitive match). Posts scoring zero are never suggested, even if
// the result stays below limit. Ties keep collection order.
func Related(current entity.Post, posts []entity.Post, registry entity.Registry, limit int) []entity.Post {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	currentCat, currentCatOK := registry.Resolve(current.Category)

	currentTags := make(map[string]struct{}, len(current.Tags))
	for _, tag := range current.Tags {
		currentTags[tag] = struct{}{}
	}

	scored := make([]ScoredPost, 0, len(posts))

	for _, p := range posts {
		if p.URL == current.URL || !p.Published {
			continue
		}

		score := 0

		if currentCatOK {
			if cat, ok := registry.Resolve(p.Category); ok && cat.ID == currentCat.ID {
				score += categoryMatchScore
			}
		}

		for _, tag := range p.Tags {
			if _, ok := currentTags[tag]; ok {
				score += sharedTagScore
			}
		}

		if score > 0 {
			scored = append(scored, ScoredPost{Post: p, Score: score})
		}
	}

	// Stable: equal scores keep the original collection order.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if len(scored) > limit {
		scored = scored[:limit]
	}

	related := make([]entity.Post, len(scored))
	for i, s := range scored {
		related[i] = s.Post
	}

	return related
}

// Adjacent returns the chronological neighbors of the current post among
// published posts ordered most recent first: previous is the older post,
// next the newer one. Both are nil when the current post is not in the
// collection, e.g. because it is unpublished.
func Adjacent(current entity.Post, posts []entity.Post) (previous, next *entity.Post) {
	published := make([]entity.Post, 0, len(posts))

	for _, p := range posts {
		if p.Published {
			published = append(published, p)
		}
	}

	sort.SliceStable(published, func(i, j int) bool {
		return published[i].Date.After(published[j].Date)
	})

	idx := -1

	for i, p := range published {
		if p.URL == current.URL {
			idx = i
			break
		}
	}

	if idx == -1 {
		return nil, nil
	}

	if idx+1 < len(published) {
		previous = &published[idx+1]
	}

	if idx > 0 {
		next = &published[idx-1]
	}

	return previous, next
}
