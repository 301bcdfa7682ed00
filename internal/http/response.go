package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/controller"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/cusp"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Message: message})
}

// mapFailure translates client and controller errors onto gateway responses.
// Backend failures without a status (transport errors) surface as 502.
func mapFailure(w http.ResponseWriter, err error) {
	switch err {
	case nil:
		return
	case controller.ErrDeleteInFlight, controller.ErrReportNotPending:
		WriteError(w, http.StatusConflict, err.Error())
		return
	case controller.ErrUnknownEntity, controller.ErrUnknownReport, controller.ErrNoDeleteTarget:
		WriteError(w, http.StatusNotFound, err.Error())
		return
	case controller.ErrUnsupportedOp:
		WriteError(w, http.StatusMethodNotAllowed, err.Error())
		return
	case controller.ErrUnknownAction:
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if apiErr, ok := err.(cusp.APIError); ok {
		status := apiErr.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
		WriteError(w, status, apiErr.Message)
		return
	}
	WriteError(w, http.StatusInternalServerError, "Internal server error")
}
