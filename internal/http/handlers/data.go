package handlers

import (
	"net/http"

	"github.com/Samrat25/HireX/internal/app"
	"github.com/Samrat25/HireX/internal/http/response"
)

type DataHandler struct {
	data *app.DataService
}

func NewDataHandler(data *app.DataService) *DataHandler {
	return &DataHandler{data: data}
}

func (h *DataHandler) Export(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.data.Export(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, bundle)
}

func (h *DataHandler) Import(w http.ResponseWriter, r *http.Request) {
	var bundle app.ExportBundle
	if err := decodeJSON(r, &bundle); err != nil {
		response.Error(w, err)
		return
	}
	if err := h.data.Import(r.Context(), bundle); err != nil {
		response.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *DataHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.data.Clear(r.Context()); err != nil {
		response.Error(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
