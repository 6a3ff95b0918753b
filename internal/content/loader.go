// Package content loads posts from a directory of MDX files with YAML
// front matter.
package content

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eyoab/tarikoch/internal/app"
	"github.com/eyoab/tarikoch/internal/entity"
)

var frontMatterDelim = []byte("---")

// frontMatter mirrors the YAML header of a content file.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Cover       string   `yaml:"cover"`
	Published   *bool    `yaml:"published"`
	Tags        []string `yaml:"tags"`
	Category    string   `yaml:"category"`
	Featured    bool     `yaml:"featured"`
	Author      string   `yaml:"author"`
	Audio       string   `yaml:"audio"`
}

// Loader reads posts from a content directory.
type Loader struct {
	dir    string
	logger *slog.Logger
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir:    dir,
		logger: app.Logger(),
	}
}

// Load walks the content directory and parses every .md/.mdx file into a
// post. A file with broken front matter is logged and skipped; a post with
// an unparseable date is logged and kept with the zero time so the rest of
// the pipeline can still degrade gracefully.
func (l *Loader) Load() ([]entity.Post, error) {
	var posts []entity.Post

	err := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))

		if ext != ".md" && ext != ".mdx" {
			return nil
		}

		post, err := l.loadFile(path)

		if err != nil {
			l.logger.Error("Skipping unreadable post", "path", path, "error", err)
			return nil
		}

		posts = append(posts, post)

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("could not walk content dir %s: %w", l.dir, err)
	}

	l.logger.Info("Loaded content", "dir", l.dir, "posts", len(posts))

	return posts, nil
}

func (l *Loader) loadFile(path string) (entity.Post, error) {
	raw, err := os.ReadFile(path)

	if err != nil {
		return entity.Post{}, fmt.Errorf("could not read %s: %w", path, err)
	}

	header, body, err := splitFrontMatter(raw)

	if err != nil {
		return entity.Post{}, fmt.Errorf("could not split front matter of %s: %w", path, err)
	}

	var fm frontMatter

	if err := yaml.Unmarshal(header, &fm); err != nil {
		return entity.Post{}, fmt.Errorf("could not parse front matter of %s: %w", path, err)
	}

	date, err := parseDate(fm.Date)

	if err != nil {
		// Keep the post; the zero time sorts oldest and formats empty.
		l.logger.Error("Invalid post date", "path", path, "date", fm.Date, "error", err)
	}

	// published defaults to true when the front matter omits it.
	published := fm.Published == nil || *fm.Published

	slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return entity.Post{
		URL:         "/posts/" + slug,
		Title:       fm.Title,
		Description: fm.Description,
		Date:        date,
		Cover:       fm.Cover,
		Published:   published,
		Tags:        fm.Tags,
		Category:    fm.Category,
		Featured:    fm.Featured,
		Author:      fm.Author,
		Audio:       fm.Audio,
		RawContent:  StripMarkup(string(body)),
	}, nil
}

// splitFrontMatter separates the leading "---" delimited YAML block from
// the body. A file without front matter is all body.
func splitFrontMatter(raw []byte) (header, body []byte, err error) {
	trimmed := bytes.TrimLeft(raw, "\uFEFF\n\r ")

	if !bytes.HasPrefix(trimmed, frontMatterDelim) {
		return nil, raw, nil
	}

	rest := trimmed[len(frontMatterDelim):]
	end := bytes.Index(rest, append([]byte("\n"), frontMatterDelim...))

	if end == -1 {
		return nil, nil, fmt.Errorf("unterminated front matter block")
	}

	header = rest[:end]
	body = rest[end+1+len(frontMatterDelim):]

	return header, body, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unsupported date format: %q", s)
}
