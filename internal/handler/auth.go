package handler

import (
	"net/http"

	"github.com/hsolberg/travelmate/internal/middleware"
)

// sessionResponse is the body returned by sign-up, sign-in, and /auth/me.
type sessionResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// SignUp handles POST /auth/signup. A successful sign-up is also a sign-in.
func (s *Server) SignUp(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	session, err := s.auth.SignUp(r.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{
		Token: session.Token, UserID: session.UserID, Name: session.Name, Email: session.Email,
	})
}

// SignIn handles POST /auth/signin.
func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	session, err := s.auth.SignIn(r.Context(), body.Email, body.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		Token: session.Token, UserID: session.UserID, Name: session.Name, Email: session.Email,
	})
}

// Logout handles POST /auth/logout. Logging out an unknown or missing
// token succeeds — the end state is "no session" either way.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.Logout(r.Context(), middleware.BearerToken(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /auth/me: the one endpoint where a missing session is an
// error rather than a silent no-op, since its whole job is describing it.
func (s *Server) Me(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "no session")
		return
	}

	session, err := s.auth.SessionByToken(r.Context(), token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "no session")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{
		Token: session.Token, UserID: session.UserID, Name: session.Name, Email: session.Email,
	})
}
