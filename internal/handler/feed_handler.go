package handler

import (
	"errors"
	"strings"

	"solar-catalog-be/internal/pkg/logger"
	"solar-catalog-be/internal/pkg/serverutils"
	internalWS "solar-catalog-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// FeedHandler upgrades admin sessions to the live catalog event feed.
type FeedHandler struct {
	hub       *internalWS.Hub
	jwtSecret string
	logger    logger.ILogger
}

func NewFeedHandler(hub *internalWS.Hub, jwtSecret string, log logger.ILogger) *FeedHandler {
	return &FeedHandler{
		hub:       hub,
		jwtSecret: jwtSecret,
		logger:    log,
	}
}

func (h *FeedHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/admin/ws", h.ServeWs)
}

// ServeWs authenticates before the upgrade. Browsers cannot set headers on a
// websocket handshake, so the token is read from ?token= first.
func (h *FeedHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if tokenStr == "" {
		return serverutils.Unauthorized("Missing token")
	}

	principal, err := serverutils.ParseAdminToken(h.jwtSecret, tokenStr)
	if err != nil {
		h.logger.Warn("FeedHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err.Error()})
		if errors.Is(err, serverutils.ErrNotAdmin) {
			return serverutils.Forbidden("Admin access required")
		}
		return serverutils.Unauthorized("Invalid or expired token")
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("FeedHandler", "Starting WebSocket session", map[string]interface{}{"admin_id": principal.Id.String()})
		h.hub.Serve(conn, principal.Id)
		h.logger.Info("FeedHandler", "WebSocket session ended", map[string]interface{}{"admin_id": principal.Id.String()})
	})(c)
}
