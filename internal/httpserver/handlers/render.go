package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkdeck/internal/domain"
	"github.com/MrSnakeDoc/linkdeck/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkdeck/internal/logger"
	redisstore "github.com/MrSnakeDoc/linkdeck/internal/store/redis"
)

type renderResponse struct {
	BlockID  string                `json:"block_id"`
	Revision int64                 `json:"revision"`
	Cached   bool                  `json:"cached"`
	Links    []domain.ResolvedLink `json:"links"`
}

type listBlocksResponse struct {
	Blocks []string `json:"blocks"`
}

// RenderBlock resolves a block's links for display. Renders are cached per
// block and keyed by the store revision, so a commit invalidates naturally.
func RenderBlock(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		blockID := chi.URLParam(r, "blockID")

		rev, err := d.Store.Revision(ctx, blockID)
		if err != nil {
			d.Logger.Error("failed to read block revision",
				logger.String("block_id", blockID), logger.Error(err))
			http.Error(w, "storage unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Cache-Tags", redisstore.CacheTag(blockID))

		if links, ok := d.Cache.Get(blockID, rev); ok {
			_ = json.NewEncoder(w).Encode(renderResponse{
				BlockID:  blockID,
				Revision: rev,
				Cached:   true,
				Links:    links,
			})
			return
		}

		rows, err := d.Store.Get(ctx, blockID)
		if err != nil {
			d.Logger.Error("failed to load block",
				logger.String("block_id", blockID), logger.Error(err))
			http.Error(w, "storage unavailable", http.StatusInternalServerError)
			return
		}
		if rows == nil {
			// Never-edited locked blocks render straight from their defaults.
			def, ok := d.Defaults.Lookup(blockID)
			if !ok {
				http.Error(w, "unknown block", http.StatusNotFound)
				return
			}
			rows = def
		}

		links := domain.Render(rows)
		d.Cache.Put(blockID, rev, links)

		_ = json.NewEncoder(w).Encode(renderResponse{
			BlockID:  blockID,
			Revision: rev,
			Cached:   false,
			Links:    links,
		})
	}
}

// ListBlocks returns the IDs of every block that has persisted configuration.
func ListBlocks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := d.Store.AllBlockIDs(r.Context())
		if err != nil {
			d.Logger.Error("failed to list blocks", logger.Error(err))
			http.Error(w, "storage unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(listBlocksResponse{Blocks: ids})
	}
}
