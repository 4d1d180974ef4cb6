package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Paging struct {
	Page     int
	PageSize int
	Offset   int
	Limit    int
}

// ResolvePaging reads ?page= and ?page_size= (alias ?per_page=) and
// normalizes them: page >= 1, page_size defaulted and capped at MaxPageSize.
// A page past the end of the result set yields an empty page, not an error.
func ResolvePaging(c *fiber.Ctx) Paging {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page", "1")))
	if page < 1 {
		page = DefaultPage
	}

	sizeStr := strings.TrimSpace(c.Query("page_size"))
	if sizeStr == "" {
		sizeStr = strings.TrimSpace(c.Query("per_page"))
	}
	size, _ := strconv.Atoi(sizeStr)
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Paging{
		Page:     page,
		PageSize: size,
		Offset:   (page - 1) * size,
		Limit:    size,
	}
}
