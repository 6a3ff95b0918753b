package content

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	importLineRe = regexp.MustCompile(`(?m)^(import|export)\s+.*$`)
	codeFenceRe  = regexp.MustCompile("(?m)^```[^\n]*$")
	imageRe      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	headingRe    = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	emphasisRe   = regexp.MustCompile("[*_`~]+")
	quoteRe      = regexp.MustCompile(`(?m)^>\s*`)
)

// StripMarkup reduces an MDX body to plain text for reading-time
// estimation and search: MDX import/export lines and images are dropped,
// links keep their text, HTML/JSX tags are removed via goquery, and
// residual markdown syntax is stripped.
func StripMarkup(body string) string {
	s := importLineRe.ReplaceAllString(body, "")
	s = codeFenceRe.ReplaceAllString(s, "")
	s = imageRe.ReplaceAllString(s, "")
	s = linkRe.ReplaceAllString(s, "$1")

	if strings.ContainsRune(s, '<') {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			s = doc.Text()
		}
	}

	s = headingRe.ReplaceAllString(s, "")
	s = quoteRe.ReplaceAllString(s, "")
	s = emphasisRe.ReplaceAllString(s, "")

	return strings.Join(strings.Fields(s), " ")
}
