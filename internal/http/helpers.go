package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/controller"
	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/upload"
)

const maxUploadMemory = 32 << 20

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		WriteError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}

func jsonUnmarshal(raw string, dst any) error {
	if strings.TrimSpace(raw) == "" {
		return errors.New("empty document")
	}
	return json.Unmarshal([]byte(raw), dst)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// formAttachment pulls a single uploaded file out of a multipart form. A
// missing file is not an error, edits may keep the stored asset.
func formAttachment(r *http.Request, field string) (*upload.Attachment, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()
	return upload.FromReader(field, header.Filename, file)
}

func handleList[T any, F any](ctl *controller.Controller[T, F], w http.ResponseWriter, r *http.Request) {
	if err := ctl.Load(r.Context()); err != nil {
		mapFailure(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, ctl.Visible(r.URL.Query().Get("q")))
}

func handleGet[T any, F any](ctl *controller.Controller[T, F], w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	item, err := ctl.OpenView(r.Context(), id)
	if err != nil {
		mapFailure(w, err)
		return
	}
	ctl.CloseModal()
	WriteJSON(w, http.StatusOK, item)
}

// handleDelete runs the two-phase confirmation in one request: the HTTP
// DELETE is the explicit confirmation. A failed attempt cancels the pending
// confirmation so a retry is not rejected as in flight.
func handleDelete[T any, F any](ctl *controller.Controller[T, F], w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	if _, err := ctl.RequestDelete(r.Context(), id); err != nil {
		mapFailure(w, err)
		return
	}
	if err := ctl.ConfirmDelete(r.Context()); err != nil {
		ctl.CancelDelete()
		mapFailure(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"msg": "Deleted successfully"})
}

func handleSave[T any, F any](ctl *controller.Controller[T, F], w http.ResponseWriter, r *http.Request, id int64, form F) {
	if err := ctl.SaveByID(r.Context(), id, form); err != nil {
		mapFailure(w, err)
		return
	}
	status := http.StatusOK
	msg := "Updated successfully"
	if id == 0 {
		status = http.StatusCreated
		msg = "Created successfully"
	}
	WriteJSON(w, status, map[string]string{"msg": msg})
}
