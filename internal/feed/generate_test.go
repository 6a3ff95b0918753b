package feed

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyoab/tarikoch/internal/entity"
)

func testGenerator() *Generator {
	return &Generator{Site: Site{
		URL:         "https://tarikoch.test",
		Title:       "ታሪኮች",
		Description: "የመጽሐፍ ቅዱስ ታሪኮች",
	}}
}

func testPosts() []entity.Post {
	return []entity.Post{
		{
			URL:         "/posts/noah",
			Title:       "የኖኅ መርከብ",
			Description: "የጥፋት ውኃ ታሪክ",
			Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Published:   true,
			Author:      "ኤያብ",
			RawContent:  "እግዚአብሔርም ኖኅን አለው",
		},
		{
			URL:       "/posts/draft",
			Title:     "ረቂቅ",
			Date:      time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			Published: false,
		},
		{
			URL:       "/posts/ruth",
			Title:     "ሩት",
			Date:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Published: true,
		},
	}
}

func TestGenerateRSS(t *testing.T) {
	content, err := testGenerator().Generate(testPosts(), entity.FormatRSS)

	require.NoError(t, err)

	rss := string(content)
	assert.Contains(t, rss, "<rss")
	assert.Contains(t, rss, "ታሪኮች")
	assert.Contains(t, rss, "የኖኅ መርከብ")
	assert.Contains(t, rss, "https://tarikoch.test/posts/noah")
	assert.NotContains(t, rss, "/posts/draft", "unpublished posts stay out of the feed")
}

func TestGenerateAtom(t *testing.T) {
	content, err := testGenerator().Generate(testPosts(), entity.FormatAtom)

	require.NoError(t, err)

	atom := string(content)
	assert.Contains(t, atom, "<feed")
	assert.Contains(t, atom, "ሩት")
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	_, err := testGenerator().Generate(testPosts(), "json")

	assert.Error(t, err)
}

func TestGenerateItemLimit(t *testing.T) {
	posts := make([]entity.Post, 0, itemLimit+5)

	for i := 0; i < itemLimit+5; i++ {
		posts = append(posts, entity.Post{
			URL:       fmt.Sprintf("/posts/p%d", i),
			Title:     fmt.Sprintf("Post %d", i),
			Date:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Published: true,
		})
	}

	content, err := testGenerator().Generate(posts, entity.FormatRSS)

	require.NoError(t, err)

	rss := string(content)
	assert.Contains(t, rss, "/posts/p24", "the newest post is included")
	assert.Contains(t, rss, "/posts/p5", "the 20th newest post is included")
	assert.NotContains(t, rss, "/posts/p4<", "older posts are cut off")
}

func TestGenerateEmptyCollection(t *testing.T) {
	content, err := testGenerator().Generate(nil, entity.FormatRSS)

	require.NoError(t, err)
	assert.Contains(t, string(content), "<rss")
}

func TestSitemap(t *testing.T) {
	content, err := testGenerator().Sitemap(testPosts())

	require.NoError(t, err)

	sitemap := string(content)
	assert.Contains(t, sitemap, "<urlset")
	assert.Contains(t, sitemap, "<loc>https://tarikoch.test</loc>")
	assert.Contains(t, sitemap, "<loc>https://tarikoch.test/posts/noah</loc>")
	assert.Contains(t, sitemap, "<loc>https://tarikoch.test/posts/ruth</loc>")
	assert.Contains(t, sitemap, "2024-03-15T00:00:00Z")
	assert.NotContains(t, sitemap, "/posts/draft")
}
