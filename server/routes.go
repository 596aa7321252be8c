package server

import "net/http"

func (s *Server) initRoutes() {
	// Public tree: login and register
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleware(s.RedirectIfAuthenticated())...))
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.LoginSubmitHandler(), s.HTMLMiddleware(s.RedirectIfAuthenticated())...))
	s.RegisterRouteHandler("GET "+RouteRegister, ChainMiddleware(s.RegisterPageHandler(), s.HTMLMiddleware(s.RedirectIfAuthenticated())...))
	s.RegisterRouteHandler("POST "+RouteRegister, ChainMiddleware(s.RegisterSubmitHandler(), s.HTMLMiddleware(s.RedirectIfAuthenticated())...))

	// Protected tree: the five pages inside the shell
	s.RegisterRouteHandler("GET /{$}", ChainMiddleware(s.DashboardHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteUpload, ChainMiddleware(s.UploadPageHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("POST "+RouteUpload, ChainMiddleware(s.UploadSubmitHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteRisk, ChainMiddleware(s.RiskHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteReports, ChainMiddleware(s.ReportsHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("POST "+RouteReports, ChainMiddleware(s.GenerateReportHandler(), s.HTMLMiddleware(s.RequireSession())...))
	s.RegisterRouteHandler("GET "+RouteSettings, ChainMiddleware(s.SettingsHandler(), s.HTMLMiddleware(s.RequireSession())...))

	// Logout action exposed by the shell
	s.RegisterRouteHandler("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleware()...))

	// Catch-all: any other path redirects into whichever tree is active
	s.RegisterRouteHandler("/", ChainMiddleware(s.CatchAllHandler(), s.HTMLMiddleware()...))
}

// CatchAllHandler implements the per-set redirect rule: unknown paths fall
// back to the login page or the dashboard depending on authentication state.
func (s *Server) CatchAllHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.session.Current().IsAuthenticated() {
			http.Redirect(w, r, RouteDashboard, http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
	}
}
