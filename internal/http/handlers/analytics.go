package handlers

import (
	"net/http"

	"github.com/Samrat25/HireX/internal/app"
	"github.com/Samrat25/HireX/internal/http/response"
)

type AnalyticsHandler struct {
	analytics *app.AnalyticsService
}

func NewAnalyticsHandler(analytics *app.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

func (h *AnalyticsHandler) Get(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.analytics.Snapshot(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, snapshot)
}
