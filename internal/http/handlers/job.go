package handlers

import (
	"net/http"
	"strings"

	"github.com/Samrat25/HireX/internal/app"
	"github.com/Samrat25/HireX/internal/common"
	"github.com/Samrat25/HireX/internal/domain/job"
	"github.com/Samrat25/HireX/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobRequest struct {
	Title        string `json:"title"`
	Department   string `json:"department"`
	Salary       string `json:"salary"`
	Deadline     string `json:"deadline"`
	Requirements string `json:"requirements"`
	Description  string `json:"description"`
	Status       string `json:"status"`
}

type jobStatusRequest struct {
	Status string `json:"status"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), job.Job{
		Title:        req.Title,
		Department:   req.Department,
		Salary:       req.Salary,
		Deadline:     req.Deadline,
		Requirements: req.Requirements,
		Description:  req.Description,
		Status:       job.Status(req.Status),
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 0)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.jobs.Update(r.Context(), job.Job{
		ID:           jobID,
		Title:        req.Title,
		Department:   req.Department,
		Salary:       req.Salary,
		Deadline:     req.Deadline,
		Requirements: req.Requirements,
		Description:  req.Description,
		Status:       job.Status(req.Status),
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		response.Error(w, common.NewError(common.CodeValidation, "status is required", nil))
		return
	}
	updated, err := h.jobs.UpdateStatus(r.Context(), jobID, job.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 0)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), jobID); err != nil {
		response.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 0)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *JobHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	items, err := h.jobs.ListActive(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.jobs.List(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
