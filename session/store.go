package session

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/finsight/dashboard/internal/errors"
)

// Store is the single authority for "is this client currently authenticated".
// It owns the in-memory Session, persists the credential pair through its
// Repo, and publishes state changes to subscribers (the route guard).
type Store struct {
	mu      sync.RWMutex
	repo    Repo
	current Session
	subs    map[int]func(Session)
	nextSub int
}

// NewStore creates a Store and synchronously reads persisted credentials so
// the authentication state is settled before the first route decision.
// No network call is made and the token is not validated; a malformed pair
// only fails later when an API call using it is rejected.
func NewStore(repo Repo) *Store {
	s := &Store{
		repo: repo,
		subs: make(map[int]func(Session)),
	}

	creds, err := repo.Load()
	if err != nil {
		if !errors.Is(err, errors.ErrNotFound) {
			log.Warn().Err(err).Msg("credential read failed, starting logged out")
		}
		return s
	}

	// A partial pair is treated as logged out rather than half-authenticated
	if creds.AccessToken == "" || creds.RefreshToken == "" {
		return s
	}

	s.current = Session{AccessToken: creds.AccessToken, RefreshToken: creds.RefreshToken}
	return s
}

// Current returns the session state as of this call.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Login persists both tokens and flips the state to authenticated. Both
// values must be non-empty strings obtained from a successful credential
// exchange. If persisting fails the store stays logged out and the error
// is returned, so state and storage never disagree.
func (s *Store) Login(accessToken, refreshToken string) error {
	if accessToken == "" || refreshToken == "" {
		return errors.Wrapf(errors.ErrMissingCredential, "[Store.Login] both tokens are required")
	}

	s.mu.Lock()
	if err := s.repo.Save(Credentials{AccessToken: accessToken, RefreshToken: refreshToken}); err != nil {
		s.mu.Unlock()
		return errors.Wrapf(err, "[Store.Login] persist credentials")
	}
	s.current = Session{AccessToken: accessToken, RefreshToken: refreshToken}
	current, subs := s.current, s.subscribers()
	s.mu.Unlock()

	notify(subs, current)
	return nil
}

// Logout clears both persisted tokens and flips the state to
// unauthenticated. Idempotent: logging out while logged out is a no-op.
// The in-memory state is cleared even when the repo fails to clear, so a
// storage fault can never leave the client looking authenticated.
func (s *Store) Logout() error {
	s.mu.Lock()
	wasAuthenticated := s.current.IsAuthenticated()
	err := s.repo.Clear()
	s.current = Session{}
	current, subs := s.current, s.subscribers()
	s.mu.Unlock()

	if wasAuthenticated {
		notify(subs, current)
	}
	if err != nil {
		return errors.Wrapf(err, "[Store.Logout] clear credentials")
	}
	return nil
}

// Subscribe registers fn to be called with the new session whenever the
// authentication state changes. The returned cancel func removes the
// subscription. Callbacks run synchronously on the mutating goroutine,
// after the state and storage have been committed.
func (s *Store) Subscribe(fn func(Session)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// subscribers snapshots the callbacks under the lock so notify can run
// without holding it.
func (s *Store) subscribers() []func(Session) {
	snapshot := make([]func(Session), 0, len(s.subs))
	for _, fn := range s.subs {
		snapshot = append(snapshot, fn)
	}
	return snapshot
}

func notify(subs []func(Session), current Session) {
	for _, fn := range subs {
		fn(current)
	}
}
