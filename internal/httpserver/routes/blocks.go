package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkdeck/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkdeck/internal/httpserver/handlers"
)

func init() { Register(registerBlocks) }

func registerBlocks(r chi.Router, d deps.Deps) {
	r.Get("/api/blocks/{blockID}/links", handlers.RenderBlock(d))
	r.Get("/api/blocks", handlers.ListBlocks(d))
}
