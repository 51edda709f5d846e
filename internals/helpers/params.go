package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParamUUID reads a UUID path param; uuid.Nil + false when malformed.
func ParamUUID(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
