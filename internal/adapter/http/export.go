package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleExport serializes the campaign addressed by the `path` query
// parameter into tab-separated text, the format the external ad platform
// import tool consumes.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "missing path", http.StatusBadRequest)
		return
	}

	text, err := h.svc.ExportCampaign(r.Context(), path)
	if err != nil {
		h.logger.Error("export error", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/tab-separated-values; charset=utf-8")
	_, _ = w.Write([]byte(text))
}
