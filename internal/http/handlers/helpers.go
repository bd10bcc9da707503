package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Samrat25/HireX/internal/common"
)

func decodeJSON(r *http.Request, target interface{}) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil {
		return common.NewError(common.CodeValidation, "invalid request body", err)
	}
	return nil
}

// idFromPath extracts and validates the path segment at the given index,
// counting from the end. idFromPath(r, 1) on /candidates/{id}/report yields
// {id}.
func idFromPath(r *http.Request, fromEnd int) (common.UUID, error) {
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	index := len(segments) - 1 - fromEnd
	if index < 0 || index >= len(segments) {
		return "", common.NewError(common.CodeValidation, "invalid path", nil)
	}
	id, err := common.ParseUUID(segments[index])
	if err != nil {
		return "", common.NewError(common.CodeValidation, "invalid id", err)
	}
	return id, nil
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "authentication required", nil)
}
