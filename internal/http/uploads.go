package httpapi

import (
	"errors"
	"net/http"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/upload"
)

type AssetResponse struct {
	URL string `json:"url"`
}

// ResolveAsset maps a backend-relative file reference onto an absolute URL
// the panel can render. Absolute references pass through unchanged.
func (s *Server) ResolveAsset(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("ref")
	if ref == "" {
		WriteError(w, http.StatusBadRequest, "Missing ref parameter")
		return
	}
	WriteJSON(w, http.StatusOK, AssetResponse{URL: s.Client.AssetURL(ref)})
}

type PreviewResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	IsImage     bool   `json:"isImage"`
	DataURL     string `json:"dataUrl,omitempty"`
}

// PreviewUpload sniffs a file selection before it is attached to a form,
// answering with an inline data URL for images so the modal can show it.
func (s *Server) PreviewUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			WriteError(w, http.StatusBadRequest, "Missing file")
			return
		}
		WriteError(w, http.StatusBadRequest, "Invalid file upload")
		return
	}
	defer file.Close()
	att, err := upload.FromReader("file", header.Filename, file)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid file upload")
		return
	}
	WriteJSON(w, http.StatusOK, PreviewResponse{
		Filename:    att.Filename,
		ContentType: att.ContentType,
		IsImage:     att.IsImage(),
		DataURL:     att.PreviewDataURL(),
	})
}
