// Package filerepo persists the credential pair as a single encrypted file
// under the application data folder. Tokens are bearer credentials, so they
// are sealed with XChaCha20-Poly1305 rather than written in the clear.
package filerepo

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/finsight/dashboard/internal/errors"
	"github.com/finsight/dashboard/session"
)

const credentialsFile = "credentials.bin"

var _ session.Repo = (*Repo)(nil)

type Repo struct {
	path string
	key  []byte
}

// New creates a file-backed credential repo rooted at dataFolder. The
// encryption key is derived from the configured passphrase.
func New(dataFolder, passphrase string) (*Repo, error) {
	if passphrase == "" {
		return nil, errors.Wrapf(errors.ErrMissingCredential, "[filerepo.New] empty passphrase")
	}
	if err := os.MkdirAll(dataFolder, 0o700); err != nil {
		return nil, errors.Wrapf(err, "[filerepo.New] create data folder %q", dataFolder)
	}

	key := sha256.Sum256([]byte(passphrase))
	return &Repo{
		path: filepath.Join(dataFolder, credentialsFile),
		key:  key[:],
	}, nil
}

func (r *Repo) Load() (session.Credentials, error) {
	sealed, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return session.Credentials{}, errors.ErrNotFound
		}
		return session.Credentials{}, errors.Wrapf(err, "[filerepo.Load] read %q", r.path)
	}

	aead, err := chacha20poly1305.NewX(r.key)
	if err != nil {
		return session.Credentials{}, errors.Wrapf(err, "[filerepo.Load] init cipher")
	}
	if len(sealed) < aead.NonceSize() {
		return session.Credentials{}, errors.Wrapf(errors.ErrStorage, "[filerepo.Load] credential file truncated")
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return session.Credentials{}, errors.Wrapf(errors.ErrStorage, "[filerepo.Load] decrypt credential file")
	}

	var creds session.Credentials
	if err := json.Unmarshal(plain, &creds); err != nil {
		return session.Credentials{}, errors.Wrapf(err, "[filerepo.Load] decode credentials")
	}
	return creds, nil
}

func (r *Repo) Save(creds session.Credentials) error {
	plain, err := json.Marshal(creds)
	if err != nil {
		return errors.Wrapf(err, "[filerepo.Save] encode credentials")
	}

	aead, err := chacha20poly1305.NewX(r.key)
	if err != nil {
		return errors.Wrapf(err, "[filerepo.Save] init cipher")
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return errors.Wrapf(err, "[filerepo.Save] generate nonce")
	}

	sealed := aead.Seal(nonce, nonce, plain, nil)
	if err := os.WriteFile(r.path, sealed, 0o600); err != nil {
		return errors.Wrapf(err, "[filerepo.Save] write %q", r.path)
	}
	return nil
}

func (r *Repo) Clear() error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "[filerepo.Clear] remove %q", r.path)
	}
	return nil
}
