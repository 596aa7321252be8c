package backend

import (
	"golang.org/x/oauth2"

	"github.com/finsight/dashboard/internal/errors"
	"github.com/finsight/dashboard/session"
)

var _ oauth2.TokenSource = (*StoreTokenSource)(nil)

// StoreTokenSource adapts the session store to oauth2.TokenSource so every
// authenticated request carries whatever credential the store currently
// holds. It never refreshes; the refresh flow is out of scope and the
// stored refresh token is only round-tripped.
type StoreTokenSource struct {
	store *session.Store
}

func NewStoreTokenSource(store *session.Store) *StoreTokenSource {
	return &StoreTokenSource{store: store}
}

func (ts *StoreTokenSource) Token() (*oauth2.Token, error) {
	current := ts.store.Current()
	if !current.IsAuthenticated() {
		return nil, errors.ErrUnauthorized
	}
	return &oauth2.Token{
		AccessToken:  current.AccessToken,
		RefreshToken: current.RefreshToken,
		TokenType:    "Bearer",
	}, nil
}
