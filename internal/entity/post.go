package entity

import "time"

type Post struct {
	// URL is the site-relative path of the post, e.g. /posts/noah.
	// Unique and stable per post.
	URL         string
	Title       string
	Description string
	// Date is the Gregorian publish date.
	Date  time.Time
	Cover string
	// Published is defaulted to true at the content-loading boundary,
	// so inside the core it is never ambiguous.
	Published bool
	Tags      []string
	// Category is a raw identifier resolved against the category registry.
	Category string
	Featured bool
	Author   string
	Audio    string
	// RawContent is the plain-text body with markup stripped,
	// used for reading-time estimation and search.
	RawContent string
}

// Slug returns the last path segment of the post URL.
func (p Post) Slug() string {
	for i := len(p.URL) - 1; i >= 0; i-- {
		if p.URL[i] == '/' {
			return p.URL[i+1:]
		}
	}
	return p.URL
}
