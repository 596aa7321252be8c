package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Public routes (reachable only while unauthenticated)
	RouteLogin    = "/login"
	RouteRegister = "/register"

	// Protected routes (reachable only while authenticated)
	RouteDashboard = "/"
	RouteUpload    = "/upload"
	RouteRisk      = "/risk"
	RouteReports   = "/reports"
	RouteSettings  = "/settings"

	// Logout action exposed by the shell
	RouteLogout = "/logout"
)
