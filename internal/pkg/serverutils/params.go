package serverutils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam reads a route parameter as a UUID. A malformed value is a
// 400 so the store is never queried with it.
func ParseUUIDParam(ctx *fiber.Ctx, param, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(param))
	if err != nil {
		return uuid.Nil, BadRequest("Invalid " + label + " ID")
	}
	return id, nil
}

// QueryInt parses an integer query parameter, falling back when it is absent.
func QueryInt(ctx *fiber.Ctx, key string, fallback int) (int, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, BadRequest(key + " must be an integer")
	}
	return v, nil
}
