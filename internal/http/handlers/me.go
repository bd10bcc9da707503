package handlers

import (
	"net/http"

	"github.com/Samrat25/HireX/internal/http/middleware"
	"github.com/Samrat25/HireX/internal/http/response"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// Get returns the resolved identity profile for the authenticated user.
func (h *MeHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	response.JSON(w, http.StatusOK, profile)
}
