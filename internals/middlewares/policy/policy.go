// internals/middlewares/policy/policy.go
package policy

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authmw "newgate_backend/internals/middlewares/auth"
)

// Operation is the CRUD verb an endpoint maps to.
type Operation string

const (
	OpList     Operation = "list"
	OpRetrieve Operation = "retrieve"
	OpCreate   Operation = "create"
	OpUpdate   Operation = "update"
	OpDelete   Operation = "delete"
)

// anonymousOps declares, per entity route name, which operations need no
// credential. One table instead of per-controller conditionals so the
// entities cannot drift apart. Anything absent requires authentication.
//
//   - content + worship entities: public read, authenticated write
//   - config collections (giving-options, values, leadership, church-info,
//     home-features): every operation authenticated
//   - contact-messages: anonymous create only
var anonymousOps = map[string]map[Operation]bool{
	"events":     {OpList: true, OpRetrieve: true},
	"sermons":    {OpList: true, OpRetrieve: true},
	"ministries": {OpList: true, OpRetrieve: true},
	"livestream": {OpList: true, OpRetrieve: true},
	"schedule":   {OpList: true, OpRetrieve: true},

	"giving-options": {},
	"values":         {},
	"leadership":     {},
	"church-info":    {},
	"home-features":  {},

	"contact-messages": {OpCreate: true},
}

// AllowsAnonymous reports whether (entity, operation) is open to
// unauthenticated callers. Unknown entities default to authenticated-only.
func AllowsAnonymous(entity string, op Operation) bool {
	ops, ok := anonymousOps[entity]
	if !ok {
		return false
	}
	return ops[op]
}

// Entities lists every route name in the policy table.
func Entities() []string {
	out := make([]string, 0, len(anonymousOps))
	for name := range anonymousOps {
		out = append(out, name)
	}
	return out
}

// Guard is the single authorization checkpoint: it consults the table and,
// when a credential is required, delegates to the JWT middleware.
func Guard(db *gorm.DB, entity string, op Operation) fiber.Handler {
	requireAuth := authmw.RequireAuth(db)
	return func(c *fiber.Ctx) error {
		if AllowsAnonymous(entity, op) {
			return c.Next()
		}
		return requireAuth(c)
	}
}
