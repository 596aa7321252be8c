package server

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/finsight/dashboard/internal/errors"
)

const contentTypeHTML = "text/html; charset=utf-8"

// renderPage renders a protected page inside the shell layout (top bar,
// side navigation, content area).
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, pageTitle, contentTemplate string, content any) {
	contentTmpl, err := ParseTemplate(contentTemplate)
	if err != nil {
		log.Err(err).Str("template", contentTemplate).Msg("failed to load content template")
		http.Error(w, "Failed to load content template", http.StatusInternalServerError)
		return
	}

	var contentBuf strings.Builder
	if err := contentTmpl.Execute(&contentBuf, content); err != nil {
		log.Err(err).Str("template", contentTemplate).Msg("failed to render content template")
		http.Error(w, "Failed to render content", http.StatusInternalServerError)
		return
	}

	layoutTmpl, err := ParseTemplate("layout.html")
	if err != nil {
		http.Error(w, "Failed to load layout template", http.StatusInternalServerError)
		return
	}

	nav := navStateFromRequest(r.URL.Path, r.URL.Query().Get("nav"))
	data := map[string]interface{}{
		"AppName":     s.config.GetAppName(),
		"PageTitle":   pageTitle,
		"NavItems":    NavItems(),
		"ActivePage":  ActiveNav(nav.Path),
		"OverlayOpen": nav.OverlayOpen,
		"Content":     template.HTML(contentBuf.String()),
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	if err := layoutTmpl.Execute(w, data); err != nil {
		log.Err(err).Msg("failed to render layout template")
	}
}

func isUnauthorized(err error) bool {
	return errors.Is(err, errors.ErrUnauthorized)
}

// forceLogout handles a rejected credential on an authenticated page: the
// session is invalidated and the whole route tree flips back to public.
func (s *Server) forceLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Logout(); err != nil {
		log.Err(err).Msg("logout after rejected credential")
	}
	http.Redirect(w, r, RouteLogin+"?error=Session+expired", http.StatusSeeOther)
}
