package server

import "net/http"

// RequireSession guards the protected tree. The session store is the single
// source of truth; any unauthenticated request is redirected to the login
// page regardless of path.
func (s *Server) RequireSession() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !s.session.Current().IsAuthenticated() {
				http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
				return
			}
			next(w, r)
		}
	}
}

// RedirectIfAuthenticated guards the public tree. While authenticated, the
// login and register pages are unreachable and redirect to the dashboard.
func (s *Server) RedirectIfAuthenticated() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if s.session.Current().IsAuthenticated() {
				http.Redirect(w, r, RouteDashboard, http.StatusSeeOther)
				return
			}
			next(w, r)
		}
	}
}
