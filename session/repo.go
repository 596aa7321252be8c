package session

// Repo defines the interface for credential persistence.
// The store is the only component that touches it; pages and the route
// guard never read persisted storage directly.
type Repo interface {
	// Load retrieves the persisted credential pair.
	// Returns errors.ErrNotFound when no pair is stored.
	Load() (Credentials, error)

	// Save persists the credential pair, replacing any previous pair
	Save(Credentials) error

	// Clear removes the persisted pair. Clearing an empty store is a no-op.
	Clear() error
}
