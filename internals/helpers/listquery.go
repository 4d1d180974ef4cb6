package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListSpec declares what a list endpoint accepts from the client:
// which columns free-text search touches, which fields may be ordered on,
// and the documented default order (also used as the stable tiebreak).
// Unknown search/ordering input is ignored, never an error.
type ListSpec struct {
	SearchFields []string          // columns matched by ?search= (ILIKE, OR)
	OrderFields  map[string]string // api name -> column for ?ordering=
	DefaultOrder string            // SQL order clause, e.g. "date DESC"
}

// SearchClause builds the OR'd ILIKE condition for a search term.
// Empty term or an entity without search support returns ("", nil).
func (s ListSpec) SearchClause(term string) (string, []any) {
	term = strings.TrimSpace(term)
	if term == "" || len(s.SearchFields) == 0 {
		return "", nil
	}
	conds := make([]string, 0, len(s.SearchFields))
	args := make([]any, 0, len(s.SearchFields))
	pattern := "%" + term + "%"
	for _, col := range s.SearchFields {
		conds = append(conds, col+" ILIKE ?")
		args = append(args, pattern)
	}
	return strings.Join(conds, " OR "), args
}

// OrderClause resolves a DRF-style ?ordering= value ("-date,title") against
// the whitelist. Unrecognized fields are dropped; the default order is always
// appended so ties break on the documented field order.
func (s ListSpec) OrderClause(ordering string) string {
	var parts []string
	for _, raw := range strings.Split(ordering, ",") {
		field := strings.TrimSpace(raw)
		if field == "" {
			continue
		}
		dir := "ASC"
		if strings.HasPrefix(field, "-") {
			dir = "DESC"
			field = field[1:]
		}
		col, ok := s.OrderFields[field]
		if !ok {
			continue
		}
		parts = append(parts, col+" "+dir)
	}
	if s.DefaultOrder != "" {
		parts = append(parts, s.DefaultOrder)
	}
	return strings.Join(parts, ", ")
}

// Scope applies search + ordering from the request to a query. Meant for
// db.Scopes(spec.Scope(c)).
func (s ListSpec) Scope(c *fiber.Ctx) func(*gorm.DB) *gorm.DB {
	search := c.Query("search")
	ordering := c.Query("ordering")
	return func(q *gorm.DB) *gorm.DB {
		if cond, args := s.SearchClause(search); cond != "" {
			q = q.Where(cond, args...)
		}
		if order := s.OrderClause(ordering); order != "" {
			q = q.Order(order)
		}
		return q
	}
}
