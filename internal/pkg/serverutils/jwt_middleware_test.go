package serverutils

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type adminSet map[uuid.UUID]bool

func (s adminSet) IsActiveAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	if s == nil {
		return false, errors.New("store unavailable")
	}
	return s[id], nil
}

func newGuardedApp() *fiber.App {
	return newCheckedApp(nil)
}

func newCheckedApp(checker AdminChecker) *fiber.App {
	app := fiber.New()
	app.Get("/guarded", NewAdminMiddleware(testSecret, checker), func(ctx *fiber.Ctx) error {
		principal, ok := CurrentAdmin(ctx)
		if !ok {
			return ctx.SendStatus(fiber.StatusInternalServerError)
		}
		return ctx.SendString(principal.Email)
	})
	return app
}

func TestAdminMiddleware(t *testing.T) {
	app := newGuardedApp()
	admin := AdminPrincipal{Id: uuid.New(), Email: "admin@example.com", Role: RoleAdmin}

	validToken, _, err := SignAdminToken(testSecret, admin, time.Hour)
	require.NoError(t, err)
	expiredToken, _, err := SignAdminToken(testSecret, admin, -time.Minute)
	require.NoError(t, err)
	wrongSecretToken, _, err := SignAdminToken("other-secret", admin, time.Hour)
	require.NoError(t, err)
	editorToken, _, err := SignAdminToken(testSecret, AdminPrincipal{Id: uuid.New(), Email: "e@example.com", Role: "editor"}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "missing header", header: "", status: fiber.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", status: fiber.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not.a.token", status: fiber.StatusUnauthorized},
		{name: "expired", header: "Bearer " + expiredToken, status: fiber.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + wrongSecretToken, status: fiber.StatusUnauthorized},
		{name: "non admin role", header: "Bearer " + editorToken, status: fiber.StatusForbidden},
		{name: "valid admin", header: "Bearer " + validToken, status: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/guarded", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestAdminMiddleware_RechecksAccount(t *testing.T) {
	active := AdminPrincipal{Id: uuid.New(), Email: "active@example.com", Role: RoleAdmin}
	disabled := AdminPrincipal{Id: uuid.New(), Email: "disabled@example.com", Role: RoleAdmin}
	deleted := AdminPrincipal{Id: uuid.New(), Email: "deleted@example.com", Role: RoleAdmin}
	admins := adminSet{active.Id: true, disabled.Id: false}

	tests := []struct {
		name    string
		checker AdminChecker
		admin   AdminPrincipal
		status  int
	}{
		{name: "active admin", checker: admins, admin: active, status: fiber.StatusOK},
		{name: "deactivated admin", checker: admins, admin: disabled, status: fiber.StatusUnauthorized},
		{name: "deleted admin", checker: admins, admin: deleted, status: fiber.StatusUnauthorized},
		{name: "lookup failure", checker: adminSet(nil), admin: active, status: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := SignAdminToken(testSecret, tt.admin, time.Hour)
			require.NoError(t, err)

			req := httptest.NewRequest("GET", "/guarded", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := newCheckedApp(tt.checker).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestParseAdminToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    RoleAdmin,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseAdminToken(testSecret, unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAdminToken_RoundTrip(t *testing.T) {
	id := uuid.New()
	token, expiresAt, err := SignAdminToken(testSecret, AdminPrincipal{Id: id, Email: "a@b.c", Role: RoleAdmin}, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	principal, err := ParseAdminToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, id, principal.Id)
	assert.Equal(t, "a@b.c", principal.Email)
}
