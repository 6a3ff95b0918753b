// Package feed renders the blog's syndication output.
package feed

import (
	"fmt"
	"sort"

	"github.com/gorilla/feeds"

	"github.com/eyoab/tarikoch/internal/entity"
)

// itemLimit caps the number of posts included in a feed.
const itemLimit = 20

// Site describes the blog for feed headers.
type Site struct {
	URL         string
	Title       string
	Description string
}

// Generator renders feeds from the post collection.
type Generator struct {
	Site Site
}

// Generate creates a feed over the published posts, most recent first,
// and returns it as a byte array.
func (g *Generator) Generate(posts []entity.Post, format string) ([]byte, error) {
	feed := &feeds.Feed{
		Title:       g.Site.Title,
		Description: g.Site.Description,
		Link:        &feeds.Link{Href: g.Site.URL},
	}

	for _, p := range recentPublished(posts, itemLimit) {
		href := g.Site.URL + p.URL

		feed.Items = append(feed.Items, &feeds.Item{
			Id:          href,
			Title:       p.Title,
			Description: p.Description,
			Content:     p.RawContent,
			Link:        &feeds.Link{Href: href},
			Author:      &feeds.Author{Name: p.Author},
			Created:     p.Date,
		})

		if feed.Created.IsZero() || p.Date.After(feed.Created) {
			feed.Created = p.Date
		}
	}

	var content string
	var err error

	switch format {
	case entity.FormatRSS:
		content, err = feed.ToRss()
	case entity.FormatAtom:
		content, err = feed.ToAtom()
	default:
		return nil, fmt.Errorf("unsupported feed format: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("could not marshal the %s feed: %w", format, err)
	}

	return []byte(content), nil
}

// recentPublished returns the published posts ordered most recent first,
// truncated to limit.
func recentPublished(posts []entity.Post, limit int) []entity.Post {
	published := make([]entity.Post, 0, len(posts))

	for _, p := range posts {
		if p.Published {
			published = append(published, p)
		}
	}

	sort.SliceStable(published, func(i, j int) bool {
		return published[i].Date.After(published[j].Date)
	})

	if len(published) > limit {
		published = published[:limit]
	}

	return published
}
