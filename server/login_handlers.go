package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/finsight/dashboard/backend"
	"github.com/finsight/dashboard/internal/errors"
)

// LoginPageData contains data for rendering the login page
type LoginPageData struct {
	AppName string
	Error   string
	Notice  string
	Email   string // Preserve email on error
}

// LoginPageHandler displays the login page (GET /login)
func (s *Server) LoginPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("login.html")
	if err != nil {
		panic("Failed to parse login template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := LoginPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error"),
			Notice:  r.URL.Query().Get("notice"),
			Email:   r.URL.Query().Get("email"),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("failed to render login template")
			http.Error(w, "Failed to render login page", http.StatusInternalServerError)
		}
	}
}

// LoginSubmitHandler processes the login form submission (POST /login).
// A rejected exchange is surfaced inline and leaves the session untouched;
// only a verified success reaches Store.Login.
func (s *Server) LoginSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")

		if email == "" || password == "" {
			s.renderLoginError(w, "Email and password are required", email)
			return
		}

		pair, err := s.api.Login(r.Context(), email, password)
		if err != nil {
			s.renderLoginError(w, loginErrorMessage(err), email)
			return
		}

		if err := s.session.Login(pair.AccessToken, pair.RefreshToken); err != nil {
			log.Err(err).Msg("failed to persist credentials after login")
			s.renderLoginError(w, "Could not save your session. Please try again.", email)
			return
		}

		http.Redirect(w, r, RouteDashboard, http.StatusSeeOther)
	}
}

// LogoutHandler ends the session (POST /logout). The state flip alone is
// enough to re-guard every subsequent request.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.session.Logout(); err != nil {
			log.Err(err).Msg("logout")
		}
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	}
}

func (s *Server) renderLoginError(w http.ResponseWriter, errorMsg, email string) {
	tmpl, err := ParseTemplate("login.html")
	if err != nil {
		http.Error(w, "Failed to render login page", http.StatusInternalServerError)
		return
	}
	data := LoginPageData{
		AppName: s.config.GetAppName(),
		Error:   errorMsg,
		Email:   email,
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	_ = tmpl.Execute(w, data)
}

// loginErrorMessage maps a credential exchange failure to the inline
// message. The server's own error payload wins; anything else gets a
// generic fallback.
func loginErrorMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "Login failed. Please try again."
}
