package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveFor(t *testing.T, target string) Paging {
	t.Helper()
	var got Paging
	app := fiber.New()
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c)
		return c.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestResolvePaging(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   Paging
	}{
		{
			name:   "defaults",
			target: "/items",
			want:   Paging{Page: 1, PageSize: 20, Offset: 0, Limit: 20},
		},
		{
			name:   "explicit page and size",
			target: "/items?page=3&page_size=10",
			want:   Paging{Page: 3, PageSize: 10, Offset: 20, Limit: 10},
		},
		{
			name:   "per_page alias",
			target: "/items?per_page=5",
			want:   Paging{Page: 1, PageSize: 5, Offset: 0, Limit: 5},
		},
		{
			name:   "page_size wins over per_page",
			target: "/items?page_size=7&per_page=50",
			want:   Paging{Page: 1, PageSize: 7, Offset: 0, Limit: 7},
		},
		{
			name:   "size capped at maximum",
			target: "/items?page_size=500",
			want:   Paging{Page: 1, PageSize: 100, Offset: 0, Limit: 100},
		},
		{
			name:   "garbage input falls back",
			target: "/items?page=zero&page_size=-4",
			want:   Paging{Page: 1, PageSize: 20, Offset: 0, Limit: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveFor(t, tt.target))
		})
	}
}

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		page     int
		pageSize int
		want     Pagination
	}{
		{
			name: "middle page", total: 45, page: 2, pageSize: 20,
			want: Pagination{Page: 2, PageSize: 20, Total: 45, TotalPages: 3, HasNext: true, HasPrev: true},
		},
		{
			name: "first page", total: 45, page: 1, pageSize: 20,
			want: Pagination{Page: 1, PageSize: 20, Total: 45, TotalPages: 3, HasNext: true, HasPrev: false},
		},
		{
			name: "last page", total: 45, page: 3, pageSize: 20,
			want: Pagination{Page: 3, PageSize: 20, Total: 45, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name: "empty set still one page", total: 0, page: 1, pageSize: 20,
			want: Pagination{Page: 1, PageSize: 20, Total: 0, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			name: "past the end", total: 10, page: 9, pageSize: 20,
			want: Pagination{Page: 9, PageSize: 20, Total: 10, TotalPages: 1, HasNext: false, HasPrev: true},
		},
		{
			name: "exact multiple", total: 40, page: 2, pageSize: 20,
			want: Pagination{Page: 2, PageSize: 20, Total: 40, TotalPages: 2, HasNext: false, HasPrev: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPagination(tt.total, tt.page, tt.pageSize))
		})
	}
}
