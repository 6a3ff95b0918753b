package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/eyoab/tarikoch/internal/app"
	"github.com/eyoab/tarikoch/internal/calendar"
	"github.com/eyoab/tarikoch/internal/entity"
	"github.com/eyoab/tarikoch/internal/listing"
	"github.com/eyoab/tarikoch/internal/ranking"
	"github.com/eyoab/tarikoch/internal/readtime"
)

// PostsHandler handles the listing and detail routes.
type PostsHandler struct {
	posts    []entity.Post
	registry entity.Registry
	pageSize int
	logger   *slog.Logger
}

// NewPostsHandler creates the handler and sets up its routes on mux.
func NewPostsHandler(mux *http.ServeMux, posts []entity.Post, registry entity.Registry, pageSize int) *PostsHandler {
	handler := &PostsHandler{
		posts:    posts,
		registry: registry,
		pageSize: pageSize,
		logger:   app.Logger(),
	}

	mux.HandleFunc("GET /api/posts", handler.ListPosts)
	mux.HandleFunc("GET /api/posts/{slug}", handler.GetPost)

	return handler
}

// postJSON is the wire shape of a post.
type postJSON struct {
	URL           string           `json:"url"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	Date          string           `json:"date,omitempty"`
	EthiopianDate string           `json:"ethiopianDate,omitempty"`
	Cover         string           `json:"cover,omitempty"`
	Tags          []string         `json:"tags,omitempty"`
	Category      *entity.Category `json:"category,omitempty"`
	Featured      bool             `json:"featured"`
	Author        string           `json:"author,omitempty"`
	Audio         string           `json:"audio,omitempty"`
	ReadingTime   readtime.Result  `json:"readingTime"`
}

type listResponse struct {
	Posts      []postJSON     `json:"posts"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPosts int            `json:"totalPosts"`
	TotalPages int            `json:"totalPages"`
	Total      int            `json:"totalPublished"`
	ByCategory map[string]int `json:"countsByCategory"`
}

type detailResponse struct {
	Post     postJSON   `json:"post"`
	Related  []postJSON `json:"related"`
	Previous *postJSON  `json:"previous"`
	Next     *postJSON  `json:"next"`
}

// ListPosts serves one page of the filtered, sorted post collection
// together with the category count aggregate.
func (h *PostsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	params, err := entity.NewListParamsFromRequest(r)

	if err != nil {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	result := listing.Run(h.posts, h.registry, *params, h.pageSize)

	resp := listResponse{
		Posts:      make([]postJSON, 0, len(result.Page.Posts)),
		Page:       result.Page.Page,
		PageSize:   result.Page.PageSize,
		TotalPosts: result.Page.TotalPosts,
		TotalPages: result.Page.TotalPages,
		Total:      result.Counts.Total,
		ByCategory: result.Counts.ByCategory,
	}

	for _, p := range result.Page.Posts {
		resp.Posts = append(resp.Posts, h.toJSON(p))
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetPost serves a post detail with related and adjacent posts.
func (h *PostsHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	var current *entity.Post

	for i := range h.posts {
		if h.posts[i].Slug() == slug && h.posts[i].Published {
			current = &h.posts[i]
			break
		}
	}

	if current == nil {
		writeError(w, fmt.Errorf("post not found: %s", slug), http.StatusNotFound)
		return
	}

	related := ranking.Related(*current, h.posts, h.registry, ranking.DefaultRelatedLimit)
	previous, next := ranking.Adjacent(*current, h.posts)

	resp := detailResponse{
		Post:    h.toJSON(*current),
		Related: make([]postJSON, 0, len(related)),
	}

	for _, p := range related {
		resp.Related = append(resp.Related, h.toJSON(p))
	}

	if previous != nil {
		p := h.toJSON(*previous)
		resp.Previous = &p
	}

	if next != nil {
		n := h.toJSON(*next)
		resp.Next = &n
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *PostsHandler) toJSON(p entity.Post) postJSON {
	out := postJSON{
		URL:           p.URL,
		Title:         p.Title,
		Description:   p.Description,
		EthiopianDate: calendar.Format(p.Date),
		Cover:         p.Cover,
		Tags:          p.Tags,
		Featured:      p.Featured,
		Author:        p.Author,
		Audio:         p.Audio,
		ReadingTime:   readtime.Estimate(p.RawContent),
	}

	if !p.Date.IsZero() {
		out.Date = p.Date.Format(time.RFC3339)
	}

	if cat, ok := h.registry.Resolve(p.Category); ok {
		out.Category = &cat
	}

	return out
}
