package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hrdash-api/internal/infrastructure/realtime"
)

// RegisterRealtime monta el canal realtime en GET /ws. Las peticiones sin
// upgrade websocket reciben 426.
func RegisterRealtime(app *fiber.App, hub *realtime.Hub) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		hub.Handle(conn)
	}))
}
