package serverutils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"

	principalLocalsKey = "admin_principal"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrNotAdmin     = errors.New("access denied: admins only")
)

// AdminChecker reports whether a token's subject is still an active admin.
type AdminChecker interface {
	IsActiveAdmin(ctx context.Context, id uuid.UUID) (bool, error)
}

// AdminPrincipal is what the admin middleware leaves in the request locals.
type AdminPrincipal struct {
	Id    uuid.UUID
	Email string
	Role  string
}

// SignAdminToken issues an HS256 token carrying user_id, email, role and exp.
func SignAdminToken(secret string, principal AdminPrincipal, ttl time.Duration) (string, time.Time, error) {
	expiresAt := time.Now().Add(ttl)
	claims := jwt.MapClaims{
		"user_id": principal.Id.String(),
		"email":   principal.Email,
		"role":    principal.Role,
		"exp":     expiresAt.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAdminToken validates signature, method and expiry, and requires the
// admin role. ErrNotAdmin is returned for a valid token with another role.
func ParseAdminToken(secret, tokenStr string) (AdminPrincipal, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return AdminPrincipal{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return AdminPrincipal{}, ErrInvalidToken
	}

	rawId, _ := claims["user_id"].(string)
	id, err := uuid.Parse(rawId)
	if err != nil {
		return AdminPrincipal{}, ErrInvalidToken
	}

	role, _ := claims["role"].(string)
	if role != RoleAdmin {
		return AdminPrincipal{}, ErrNotAdmin
	}

	email, _ := claims["email"].(string)
	return AdminPrincipal{Id: id, Email: email, Role: role}, nil
}

// NewAdminMiddleware guards a route with a bearer token signed by secret.
// A nil checker trusts the token claims alone.
func NewAdminMiddleware(secret string, checker AdminChecker) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing or invalid authorization header"))
		}

		principal, err := ParseAdminToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
		if errors.Is(err, ErrNotAdmin) {
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied: Admins only"))
		}
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid or expired token"))
		}

		if checker != nil {
			active, err := checker.IsActiveAdmin(ctx.UserContext(), principal.Id)
			if err != nil {
				return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, "Failed to verify admin account"))
			}
			if !active {
				return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Admin account not found or inactive"))
			}
		}

		ctx.Locals(principalLocalsKey, principal)
		return ctx.Next()
	}
}

func CurrentAdmin(ctx *fiber.Ctx) (AdminPrincipal, bool) {
	principal, ok := ctx.Locals(principalLocalsKey).(AdminPrincipal)
	return principal, ok
}
