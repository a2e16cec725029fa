package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"campsync/internal/core/domain"
	"campsync/internal/core/port"
)

type renameRequest struct {
	Level      string `json:"level"`
	ParentPath string `json:"parentPath"`
	OldKey     string `json:"oldKey"`
	NewName    string `json:"newName"`
}

// handleRename relocates or merges one node. A missing source produces
// HTTP 404; other failures produce HTTP 500 and can be retried, the engine
// never deletes the source before the copy finished.
func (h *Handler) handleRename(w http.ResponseWriter, r *http.Request) {
	var req renameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	level, err := domain.ParseLevel(req.Level)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.OldKey == "" || req.NewName == "" {
		http.Error(w, "oldKey and newName are required", http.StatusBadRequest)
		return
	}

	err = h.svc.RenameNode(r.Context(), port.RenameReq{
		Level:      level,
		ParentPath: req.ParentPath,
		OldKey:     req.OldKey,
		NewName:    req.NewName,
	})
	if err != nil {
		if errors.Is(err, port.ErrSourceNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.Error("rename error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
