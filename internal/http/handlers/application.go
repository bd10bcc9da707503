package handlers

import (
	"net/http"
	"time"

	"github.com/Samrat25/HireX/internal/app"
	"github.com/Samrat25/HireX/internal/common"
	"github.com/Samrat25/HireX/internal/domain/candidate"
	"github.com/Samrat25/HireX/internal/http/middleware"
	"github.com/Samrat25/HireX/internal/http/response"
)

// ApplicationHandler exposes the candidate-facing side of the workflow:
// applying to a posting and completing the self-serve stages.
type ApplicationHandler struct {
	workflow    *app.WorkflowService
	limiter     middleware.Limiter
	applyLimit  int
	applyWindow time.Duration
}

func NewApplicationHandler(workflow *app.WorkflowService, limiter middleware.Limiter, applyLimit int, applyWindow time.Duration) *ApplicationHandler {
	return &ApplicationHandler{workflow: workflow, limiter: limiter, applyLimit: applyLimit, applyWindow: applyWindow}
}

type applyRequest struct {
	JobID      string `json:"job_id"`
	Phone      string `json:"phone"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
}

type resumeStageRequest struct {
	Score  int      `json:"score"`
	Skills []string `json:"skills"`
}

type stageScoreRequest struct {
	Score int `json:"score"`
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	profile, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	jobID, err := common.ParseUUID(req.JobID)
	if err != nil {
		response.Error(w, common.NewError(common.CodeValidation, "invalid job id", err))
		return
	}
	if h.limiter != nil {
		if !h.limiter.Allow("apply:"+profile.Email, h.applyLimit, h.applyWindow) {
			response.Error(w, common.NewError(common.CodeValidation, "applications are submitted too frequently", nil))
			return
		}
	}
	created, err := h.workflow.Apply(r.Context(), profile, jobID, app.ApplyDetails{
		Phone:      req.Phone,
		Experience: req.Experience,
		Education:  req.Education,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	profile, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.workflow.ListByUser(r.Context(), profile.Email)
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []candidate.Candidate{}
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) CompleteResume(w http.ResponseWriter, r *http.Request) {
	candidateID, err := h.ownCandidateID(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req resumeStageRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.workflow.CompleteResume(r.Context(), candidateID, req.Score, req.Skills)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicationHandler) CompleteQuiz(w http.ResponseWriter, r *http.Request) {
	candidateID, err := h.ownCandidateID(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req stageScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.workflow.CompleteQuiz(r.Context(), candidateID, req.Score)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ApplicationHandler) CompleteAIInterview(w http.ResponseWriter, r *http.Request) {
	candidateID, err := h.ownCandidateID(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req stageScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.workflow.CompleteAIInterview(r.Context(), candidateID, req.Score)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

// ownCandidateID resolves the path id and checks the record belongs to the
// authenticated user.
func (h *ApplicationHandler) ownCandidateID(r *http.Request, fromEnd int) (common.UUID, error) {
	profile, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		return "", errUnauthorized()
	}
	candidateID, err := idFromPath(r, fromEnd)
	if err != nil {
		return "", err
	}
	record, err := h.workflow.Get(r.Context(), candidateID)
	if err != nil {
		return "", err
	}
	if record.Email != profile.Email {
		return "", common.NewError(common.CodeForbidden, "application belongs to another user", nil)
	}
	return candidateID, nil
}
