package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkdeck/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkdeck/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/linkdeck/internal/httpserver/mw"
)

func init() { Register(registerSessions) }

// Edit sessions mutate block configuration, so the whole group sits
// behind the editor token.
func registerSessions(r chi.Router, d deps.Deps) {
	r.Group(func(g chi.Router) {
		g.Use(mw.RequireToken(d.EditorToken, d.Logger))
		g.Post("/api/blocks/{blockID}/session", handlers.OpenSession(d))
		g.Get("/api/sessions/{sessionID}", handlers.GetSession(d))
		g.Post("/api/sessions/{sessionID}/rows", handlers.ApplyRowAction(d))
		g.Post("/api/sessions/{sessionID}/submit", handlers.SubmitSession(d))
	})
}
