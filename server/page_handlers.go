package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/finsight/dashboard/backend"
)

// Each protected page fetches its own dataset with the request context and
// renders one of three states: loading never reaches the client (fetches
// are synchronous per request), loaded shows the data, failed shows an
// explicit "data unavailable" message. A rejected credential instead
// invalidates the session.

// DashboardHandler renders the financial health overview (GET /).
func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := backend.Fetch(r.Context(), s.api.FinancialSummary)
		if res.Unauthorized() {
			s.forceLogout(w, r)
			return
		}
		s.renderPage(w, r, "Dashboard", "dashboard.html", res)
	}
}

// RiskHandler renders the risk assessment page (GET /risk).
func (s *Server) RiskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := backend.Fetch(r.Context(), s.api.RiskAssessment)
		if res.Unauthorized() {
			s.forceLogout(w, r)
			return
		}
		s.renderPage(w, r, "Risk", "risk.html", res)
	}
}

// ReportsHandler renders the generated-reports list (GET /reports).
func (s *Server) ReportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := backend.Fetch(r.Context(), s.api.ListReports)
		if res.Unauthorized() {
			s.forceLogout(w, r)
			return
		}
		s.renderPage(w, r, "Reports", "reports.html", res)
	}
}

// GenerateReportHandler requests a new report then returns to the list
// (POST /reports).
func (s *Server) GenerateReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		reportType := r.FormValue("report_type")
		if reportType == "" {
			reportType = "financial_health"
		}

		_, err := s.api.GenerateReport(r.Context(), backend.ReportRequest{
			ReportType:      reportType,
			IncludeForecast: r.FormValue("include_forecast") == "on",
		})
		if err != nil {
			if isUnauthorized(err) {
				s.forceLogout(w, r)
				return
			}
			log.Err(err).Str("report_type", reportType).Msg("report generation failed")
			http.Redirect(w, r, RouteReports+"?error=Report+generation+failed", http.StatusSeeOther)
			return
		}

		http.Redirect(w, r, RouteReports, http.StatusSeeOther)
	}
}

// UploadPageHandler renders the statement upload page with its history
// (GET /upload).
func (s *Server) UploadPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := backend.Fetch(r.Context(), s.api.UploadHistory)
		if res.Unauthorized() {
			s.forceLogout(w, r)
			return
		}
		s.renderPage(w, r, "Upload", "upload.html", res)
	}
}

// UploadSubmitHandler forwards an uploaded statement to the backend
// (POST /upload).
func (s *Server) UploadSubmitHandler() http.HandlerFunc {
	const maxUploadBytes = 32 << 20

	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Redirect(w, r, RouteUpload+"?error=Please+choose+a+file", http.StatusSeeOther)
			return
		}
		defer file.Close()

		if err := backend.ValidateStatementFilename(header.Filename); err != nil {
			http.Redirect(w, r, RouteUpload+"?error=Unsupported+file+type", http.StatusSeeOther)
			return
		}

		if _, err := s.api.UploadStatement(r.Context(), header.Filename, file); err != nil {
			if isUnauthorized(err) {
				s.forceLogout(w, r)
				return
			}
			log.Err(err).Str("filename", header.Filename).Msg("statement upload failed")
			http.Redirect(w, r, RouteUpload+"?error=Upload+failed", http.StatusSeeOther)
			return
		}

		http.Redirect(w, r, RouteUpload, http.StatusSeeOther)
	}
}

// SettingsHandler renders the account settings page (GET /settings).
func (s *Server) SettingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := backend.Fetch(r.Context(), s.api.Profile)
		if res.Unauthorized() {
			s.forceLogout(w, r)
			return
		}
		s.renderPage(w, r, "Settings", "settings.html", res)
	}
}
