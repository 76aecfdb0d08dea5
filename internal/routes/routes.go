package routes

import (
	"liveusers/internal/handlers"
	"liveusers/internal/metrics"
	"liveusers/internal/ws"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func Register(app *fiber.App, h *handlers.Handler, wsSrv *ws.Server) {
	app.Post("/register", h.Register)
	app.Get("/users", h.ListUsers)
	app.Get("/user/:email", h.GetUserByEmail)
	app.Get("/healthz", h.Healthz)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(wsSrv.HandleWS()))
}
