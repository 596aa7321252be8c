package session

// Credentials is the persisted credential pair. Presence of both values is
// the sole on-disk representation of "authenticated".
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Session is the client-held record of authentication state.
// Invariant: AccessToken and RefreshToken are set and cleared together,
// never independently.
type Session struct {
	AccessToken  string // Short-lived credential attached to API requests
	RefreshToken string // Longer-lived credential (refresh flow not in scope)
}

// IsAuthenticated reports whether this client currently holds credentials.
// True if and only if the access token is present.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}
