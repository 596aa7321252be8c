package server

// NavItem is one destination in the side navigation.
type NavItem struct {
	Label string
	Path  string
	Icon  string
}

// NavItems returns the shell's navigation menu. Order matters: it is the
// render order of the side navigation.
func NavItems() []NavItem {
	return []NavItem{
		{Label: "Dashboard", Path: RouteDashboard, Icon: "bi-speedometer2"},
		{Label: "Upload", Path: RouteUpload, Icon: "bi-cloud-arrow-up"},
		{Label: "Risk", Path: RouteRisk, Icon: "bi-shield-exclamation"},
		{Label: "Reports", Path: RouteReports, Icon: "bi-file-earmark-text"},
		{Label: "Settings", Path: RouteSettings, Icon: "bi-gear"},
	}
}

// ActiveNav derives the highlighted menu entry from the current path. Pure
// function of the path; selection is never persisted state.
func ActiveNav(path string) string {
	for _, item := range NavItems() {
		if item.Path == path {
			return item.Label
		}
	}
	return ""
}

// NavState models the small-viewport navigation overlay. The overlay is
// view state derived per render, so navigating and dismissing are a single
// observable update.
type NavState struct {
	Path        string
	OverlayOpen bool
}

func (n NavState) OpenOverlay() NavState {
	n.OverlayOpen = true
	return n
}

func (n NavState) CloseOverlay() NavState {
	n.OverlayOpen = false
	return n
}

// Navigate selects a destination. The returned state has the overlay
// closed; there is no intermediate state with the overlay still open on
// the new path.
func (n NavState) Navigate(path string) NavState {
	return NavState{Path: path, OverlayOpen: false}
}

// navStateFromRequest reads the overlay flag from the query string. Menu
// links carry bare paths, so following one produces a closed overlay in
// the same render.
func navStateFromRequest(path, navQuery string) NavState {
	return NavState{Path: path, OverlayOpen: navQuery == "open"}
}
