package feed

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/eyoab/tarikoch/internal/entity"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Sitemap renders a sitemap urlset over the listing root and every
// published post.
func (g *Generator) Sitemap(posts []entity.Post) ([]byte, error) {
	set := urlSet{
		Xmlns: sitemapNamespace,
		URLs:  []sitemapURL{{Loc: g.Site.URL}},
	}

	for _, p := range posts {
		if !p.Published {
			continue
		}

		u := sitemapURL{Loc: g.Site.URL + p.URL}

		if !p.Date.IsZero() {
			u.LastMod = p.Date.Format(time.RFC3339)
		}

		set.URLs = append(set.URLs, u)
	}

	out, err := xml.MarshalIndent(set, "", "  ")

	if err != nil {
		return nil, fmt.Errorf("could not marshal the sitemap: %w", err)
	}

	return append([]byte(xml.Header), out...), nil
}
