package handlers

import (
	"net/http"

	"github.com/Samrat25/HireX/internal/app"
	"github.com/Samrat25/HireX/internal/domain/candidate"
	"github.com/Samrat25/HireX/internal/http/response"
)

// CandidateHandler is the admin view of the pipeline: reviewing records and
// driving the final-interview stage.
type CandidateHandler struct {
	workflow *app.WorkflowService
}

func NewCandidateHandler(workflow *app.WorkflowService) *CandidateHandler {
	return &CandidateHandler{workflow: workflow}
}

func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.workflow.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []candidate.Candidate{}
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	candidateID, err := idFromPath(r, 0)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.workflow.Get(r.Context(), candidateID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *CandidateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	candidateID, err := idFromPath(r, 0)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.workflow.Delete(r.Context(), candidateID); err != nil {
		response.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CandidateHandler) ScheduleFinalInterview(w http.ResponseWriter, r *http.Request) {
	candidateID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.workflow.ScheduleFinalInterview(r.Context(), candidateID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *CandidateHandler) CompleteFinalInterview(w http.ResponseWriter, r *http.Request) {
	candidateID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req stageScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.workflow.CompleteFinalInterview(r.Context(), candidateID, req.Score)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
