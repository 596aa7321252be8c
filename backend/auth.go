package backend

import (
	"context"
	"net/http"
)

// TokenPair is the backend's credential exchange response.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the payload for creating a new account.
type Registration struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	CompanyName       string `json:"company_name"`
	IndustryType      string `json:"industry_type"`
	PreferredLanguage string `json:"preferred_language,omitempty"`
}

// Login exchanges credentials for a token pair (POST /auth/login).
// A rejection surfaces as *APIError and must not mutate session state;
// that is the caller's contract.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	var pair TokenPair
	if err := c.postJSON(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Register creates a new account (POST /auth/register). Success does not
// authenticate; the caller still logs in with the new credentials.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	return c.postJSON(ctx, "/auth/register", reg, nil)
}

// Profile returns the authenticated user's account profile (GET /auth/me).
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.getAuthed(ctx, "/auth/me", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile updates company name, industry, or language (PUT /auth/me).
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*Profile, error) {
	body, err := encodeJSON(update)
	if err != nil {
		return nil, err
	}
	req, err := c.newRequest(ctx, http.MethodPut, "/auth/me", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	var profile Profile
	if err := c.doAuthed(req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
