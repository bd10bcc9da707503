package handlers

import (
	"net/http"

	"github.com/Samrat25/HireX/internal/app"
	"github.com/Samrat25/HireX/internal/http/response"
)

type ReportHandler struct {
	reports *app.ReportService
}

func NewReportHandler(reports *app.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Generate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	report, err := h.reports.Generate(r.Context(), candidateID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, report)
}

func (h *ReportHandler) Send(w http.ResponseWriter, r *http.Request) {
	candidateID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.reports.Send(r.Context(), candidateID); err != nil {
		response.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
