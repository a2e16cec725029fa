package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campsync/internal/core/port"
)

type importRequest struct {
	ClientName string `json:"clientName"`
	Text       string `json:"text"`
}

type importResponse struct {
	Client    string `json:"client"`
	Campaigns int    `json:"campaigns"`
	AdGroups  int    `json:"adGroups"`
	Ads       int    `json:"ads"`
}

// handleImport parses tab-separated text into a hierarchy under the client
// from the URL and persists it. Input errors (empty text, missing Campaign
// header, no valid campaigns) produce HTTP 422 with the error message and
// nothing written; persistence failures produce HTTP 500 and are safe to
// retry because the save is idempotent.
func (h *Handler) handleImport(w http.ResponseWriter, r *http.Request) {
	clientKey := chi.URLParam(r, "client")
	if clientKey == "" {
		http.Error(w, "missing client", http.StatusBadRequest)
		return
	}
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	clientName := req.ClientName
	if clientName == "" {
		clientName = clientKey
	}

	tree, err := h.svc.ImportFromText(r.Context(), clientKey, clientName, req.Text)
	if err != nil {
		if port.IsInputError(err) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("import error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err = h.svc.SaveTree(r.Context(), tree); err != nil {
		h.logger.Error("save tree error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := importResponse{Client: tree.Key, Campaigns: len(tree.Campaigns)}
	for _, camp := range tree.Campaigns {
		resp.AdGroups += len(camp.AdGroups)
		for _, g := range camp.AdGroups {
			resp.Ads += len(g.Ads)
		}
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
