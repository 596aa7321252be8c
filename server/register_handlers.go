package server

import (
	"fmt"
	"net/http"
	"unicode"

	"github.com/rs/zerolog/log"

	"github.com/finsight/dashboard/backend"
	"github.com/finsight/dashboard/internal/errors"
)

// RegisterPageData contains data for rendering the registration page
type RegisterPageData struct {
	AppName      string
	Error        string
	Email        string
	CompanyName  string
	IndustryType string
	Industries   []string
}

// industryTypes mirrors the backend's industry categories used for
// benchmarking.
var industryTypes = []string{
	"retail", "manufacturing", "services", "trading", "technology", "other",
}

// RegisterPageHandler displays the registration page (GET /register)
func (s *Server) RegisterPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("register.html")
	if err != nil {
		panic("Failed to parse register template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := RegisterPageData{
			AppName:    s.config.GetAppName(),
			Error:      r.URL.Query().Get("error"),
			Industries: industryTypes,
		}
		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("failed to render register template")
			http.Error(w, "Failed to render register page", http.StatusInternalServerError)
		}
	}
}

// RegisterSubmitHandler processes the registration form (POST /register).
// Mismatched or weak passwords are caught before any network call.
func (s *Server) RegisterSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		email := r.FormValue("email")
		password := r.FormValue("password")
		confirm := r.FormValue("confirm_password")
		companyName := r.FormValue("company_name")
		industryType := r.FormValue("industry_type")

		form := RegisterPageData{
			AppName:      s.config.GetAppName(),
			Email:        email,
			CompanyName:  companyName,
			IndustryType: industryType,
			Industries:   industryTypes,
		}

		if email == "" || password == "" || companyName == "" {
			form.Error = "Email, password and company name are required"
			s.renderRegisterError(w, form)
			return
		}
		if password != confirm {
			form.Error = "Passwords do not match"
			s.renderRegisterError(w, form)
			return
		}
		if err := ValidatePasswordStrength(password); err != nil {
			form.Error = err.Error()
			s.renderRegisterError(w, form)
			return
		}

		err := s.api.Register(r.Context(), backend.Registration{
			Email:        email,
			Password:     password,
			CompanyName:  companyName,
			IndustryType: industryType,
		})
		if err != nil {
			form.Error = registerErrorMessage(err)
			s.renderRegisterError(w, form)
			return
		}

		http.Redirect(w, r, RouteLogin+"?notice=Account+created.+Please+sign+in.", http.StatusSeeOther)
	}
}

func (s *Server) renderRegisterError(w http.ResponseWriter, data RegisterPageData) {
	tmpl, err := ParseTemplate("register.html")
	if err != nil {
		http.Error(w, "Failed to render register page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	_ = tmpl.Execute(w, data)
}

func registerErrorMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "Registration failed. Please try again."
}

// ValidatePasswordStrength checks if password meets security requirements:
// - At least 8 characters long
// - Contains uppercase and lowercase letters
// - Contains at least one number
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	var (
		hasUpper  bool
		hasLower  bool
		hasNumber bool
	)

	for _, char := range password {
		if unicode.IsUpper(char) {
			hasUpper = true
		} else if unicode.IsLower(char) {
			hasLower = true
		} else if unicode.IsDigit(char) {
			hasNumber = true
		}
	}

	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must contain at least one number")
	}

	return nil
}
