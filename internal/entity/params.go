package entity

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDateDesc  = "date-desc"
	SortDateAsc   = "date-asc"
	SortTitleAsc  = "title-asc"
	SortTitleDesc = "title-desc"
)

const (
	FormatAtom = "atom"
	FormatRSS  = "rss"
)

// ListParams represents validated query parameters for the post listing.
type ListParams struct {
	// Category is a registry key (ID, slug or Amharic name) or CategoryAll.
	Category string

	// Query is the free-text search string. Empty disables search filtering.
	Query string

	// Sort is one of the Sort* constants.
	Sort string

	// Page is the 1-based page number. The pipeline itself does not clamp
	// out-of-range pages, so parsing normalizes anything below 1 to 1.
	Page int
}

// NewListParamsFromRequest parses and validates listing query parameters.
func NewListParamsFromRequest(r *http.Request) (*ListParams, error) {
	qp := r.URL.Query()

	category := qp.Get("category")

	if category == "" {
		category = CategoryAll
	}

	sortMode := qp.Get("sort")

	switch sortMode {
	case "":
		sortMode = SortDateDesc
	case SortDateDesc, SortDateAsc, SortTitleAsc, SortTitleDesc:
	default:
		return nil, fmt.Errorf("sort must be one of %s, %s, %s, %s",
			SortDateDesc, SortDateAsc, SortTitleAsc, SortTitleDesc)
	}

	page := 1

	if pageStr := qp.Get("page"); pageStr != "" {
		var err error
		page, err = strconv.Atoi(pageStr)

		if err != nil {
			return nil, fmt.Errorf("page must be a valid integer")
		}

		if page < 1 {
			page = 1
		}
	}

	return &ListParams{
		Category: category,
		Query:    strings.TrimSpace(qp.Get("q")),
		Sort:     sortMode,
		Page:     page,
	}, nil
}
