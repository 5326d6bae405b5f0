package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkdeck/internal/domain"
	"github.com/MrSnakeDoc/linkdeck/internal/editor"
	"github.com/MrSnakeDoc/linkdeck/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkdeck/internal/logger"
)

type rowActionRequest struct {
	Action string `json:"action"` // "add_row" | "remove_row"
}

type submitRequest struct {
	Values []editor.RowInput `json:"values"`
}

type submitErrorResponse struct {
	Errors domain.ValidationErrors `json:"errors"`
}

type submitResponse struct {
	BlockID string             `json:"block_id"`
	State   string             `json:"state"`
	Rows    []domain.LinkEntry `json:"rows"`
}

// OpenSession starts an edit session for a block. Blocks listed in the
// defaults file open as locked editors with their fixed row set.
func OpenSession(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		blockID := chi.URLParam(r, "blockID")

		var (
			ed  *editor.Editor
			err error
		)
		if def, ok := d.Defaults.Lookup(blockID); ok {
			ed, err = editor.NewLocked(ctx, d.Store, blockID, def)
		} else {
			ed, err = editor.New(ctx, d.Store, blockID)
		}
		if err != nil {
			d.Logger.Error("failed to open edit session",
				logger.String("block_id", blockID), logger.Error(err))
			http.Error(w, "failed to open session", http.StatusInternalServerError)
			return
		}

		sess := d.Sessions.Open(ed)
		d.Logger.Info("edit session opened",
			logger.String("session_id", sess.ID),
			logger.String("block_id", blockID),
			logger.String("variant", ed.Variant().String()))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(sess.View())
	}
}

// GetSession returns the current snapshot of an open session.
func GetSession(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := d.Sessions.Get(chi.URLParam(r, "sessionID"))
		if !ok {
			http.Error(w, "unknown session", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sess.View())
	}
}

// ApplyRowAction performs one structural edit (add or remove a row) and
// returns the refreshed session view.
func ApplyRowAction(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := d.Sessions.Get(chi.URLParam(r, "sessionID"))
		if !ok {
			http.Error(w, "unknown session", http.StatusNotFound)
			return
		}

		var req rowActionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		action, err := editor.ParseAction(req.Action)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		view, err := sess.Apply(action)
		switch {
		case errors.Is(err, editor.ErrLockedRows):
			http.Error(w, err.Error(), http.StatusConflict)
			return
		case errors.Is(err, editor.ErrSessionClosed):
			http.Error(w, err.Error(), http.StatusConflict)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(view)
	}
}

// SubmitSession validates the submitted values and, on a clean set, commits
// them. Validation failures come back as 422 with every error collected;
// the session stays open for another attempt.
func SubmitSession(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sessionID := chi.URLParam(r, "sessionID")

		sess, ok := d.Sessions.Get(sessionID)
		if !ok {
			http.Error(w, "unknown session", http.StatusNotFound)
			return
		}

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		view := sess.View()
		rows, verrs, err := sess.Submit(ctx, req.Values)

		w.Header().Set("Content-Type", "application/json")

		switch {
		case errors.Is(err, editor.ErrSessionClosed):
			http.Error(w, err.Error(), http.StatusConflict)
			return
		case err != nil:
			d.Logger.Error("failed to commit session",
				logger.String("session_id", sessionID),
				logger.String("block_id", view.BlockID),
				logger.Error(err))
			http.Error(w, "failed to commit", http.StatusInternalServerError)
			return
		case verrs != nil:
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = json.NewEncoder(w).Encode(submitErrorResponse{Errors: verrs})
			return
		}

		// Committed. Drop the session and the stale render.
		d.Sessions.Close(sessionID)
		d.Cache.Invalidate(view.BlockID)
		d.Logger.Info("block configuration committed",
			logger.String("session_id", sessionID),
			logger.String("block_id", view.BlockID),
			logger.Int("rows", len(rows)))

		_ = json.NewEncoder(w).Encode(submitResponse{
			BlockID: view.BlockID,
			State:   editor.StateCommitted.String(),
			Rows:    rows,
		})
	}
}
