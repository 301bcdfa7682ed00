package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/The-Nikhil-Pandey/social-hub-admin/internal/models"
)

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Checking      bool                `json:"checking"`
	Authenticated bool                `json:"isAuthenticated"`
	User          *models.SessionUser `json:"user,omitempty"`
}

func (s *Server) SessionState(w http.ResponseWriter, r *http.Request) {
	snap := s.Guard.Snapshot()
	resp := SessionResponse{Checking: snap.Checking, Authenticated: snap.Authenticated}
	if snap.Authenticated {
		if raw := s.Store.User(); len(raw) > 0 {
			var user models.SessionUser
			if err := json.Unmarshal(raw, &user); err == nil {
				resp.User = &user
			}
		}
	}
	WriteJSON(w, http.StatusOK, resp)
}

func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	result, err := s.Client.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		mapFailure(w, err)
		return
	}
	if err := s.Guard.SignIn(result.Token, result.User); err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to persist session")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"msg":  "Login successful",
		"user": result.User,
	})
}

func (s *Server) SignOut(w http.ResponseWriter, r *http.Request) {
	s.Guard.SignOut()
	WriteJSON(w, http.StatusOK, map[string]string{"msg": "Signed out"})
}
