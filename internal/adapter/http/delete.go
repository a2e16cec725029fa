package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"campsync/internal/core/port"
)

// handleDelete cascades a delete down from the node addressed by the `path`
// query parameter. A cascade failure reports the level and path it stopped
// at; the delete is idempotent, so the caller retries with the same path.
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "missing path", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteNode(r.Context(), path); err != nil {
		var cascade *port.CascadeDeleteError
		if errors.As(err, &cascade) {
			h.logger.Error("cascade delete error",
				slog.String("level", cascade.Level.String()),
				slog.String("path", cascade.Path),
				slog.Any("error", cascade.Err))
			http.Error(w, cascade.Error(), http.StatusInternalServerError)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
