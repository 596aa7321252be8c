package repofake

import (
	"sync"

	"github.com/finsight/dashboard/internal/errors"
	"github.com/finsight/dashboard/session"
)

var _ session.Repo = (*FakeCredentialsRepo)(nil)

// FakeCredentialsRepo is an in-memory credential store for tests.
// LoadErr/SaveErr/ClearErr inject persistence failures.
type FakeCredentialsRepo struct {
	lock    sync.RWMutex
	creds   session.Credentials
	present bool

	LoadErr  error
	SaveErr  error
	ClearErr error
}

func NewFakeCredentialsRepo() *FakeCredentialsRepo {
	return &FakeCredentialsRepo{}
}

func (r *FakeCredentialsRepo) Load() (session.Credentials, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.LoadErr != nil {
		return session.Credentials{}, r.LoadErr
	}
	if !r.present {
		return session.Credentials{}, errors.ErrNotFound
	}
	return r.creds, nil
}

func (r *FakeCredentialsRepo) Save(creds session.Credentials) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.creds = creds
	r.present = true
	return nil
}

func (r *FakeCredentialsRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.ClearErr != nil {
		return r.ClearErr
	}
	r.creds = session.Credentials{}
	r.present = false
	return nil
}

// Seed stores a pair directly, bypassing error injection.
func (r *FakeCredentialsRepo) Seed(accessToken, refreshToken string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.creds = session.Credentials{AccessToken: accessToken, RefreshToken: refreshToken}
	r.present = true
}
