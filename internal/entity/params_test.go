package entity

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListParamsFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    ListParams
		wantErr bool
	}{
		{
			name: "Defaults",
			url:  "/api/posts",
			want: ListParams{Category: CategoryAll, Sort: SortDateDesc, Page: 1},
		},
		{
			name: "Everything set",
			url:  "/api/posts?category=parables&q=%20mary%20&sort=title-asc&page=3",
			want: ListParams{Category: "parables", Query: "mary", Sort: SortTitleAsc, Page: 3},
		},
		{
			name: "Page below one is normalized to one",
			url:  "/api/posts?page=-2",
			want: ListParams{Category: CategoryAll, Sort: SortDateDesc, Page: 1},
		},
		{
			name:    "Invalid sort",
			url:     "/api/posts?sort=views-desc",
			wantErr: true,
		},
		{
			name:    "Non-numeric page",
			url:     "/api/posts?page=two",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)

			got, err := NewListParamsFromRequest(r)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}
