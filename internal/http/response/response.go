package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Samrat25/HireX/internal/common"
	"github.com/Samrat25/HireX/internal/http/metrics"
)

var errorCollector *metrics.Collector

func SetErrorCollector(collector *metrics.Collector) {
	errorCollector = collector
}

type errorBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func Error(w http.ResponseWriter, err error) {
	var coded *common.Error
	if !errors.As(err, &coded) {
		coded = common.NewError(common.CodeInternal, "internal error", err)
	}
	status := statusFor(coded.Code)
	if status >= http.StatusInternalServerError && errorCollector != nil {
		errorCollector.IncErrors()
	}
	JSON(w, status, errorBody{Error: string(coded.Code), Message: coded.Message, Fields: coded.Fields})
}

func statusFor(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
