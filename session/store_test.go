package session_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/finsight/dashboard/internal/errors"
	"github.com/finsight/dashboard/session"
	"github.com/finsight/dashboard/session/repofake"
)

const (
	testAccessToken  = "tok123"
	testRefreshToken = "ref456"
)

func TestNewStoreEmptyStorage(t *testing.T) {
	store := session.NewStore(repofake.NewFakeCredentialsRepo())

	current := store.Current()
	require.False(t, current.IsAuthenticated())
	require.Empty(t, current.AccessToken)
	require.Empty(t, current.RefreshToken)
}

func TestNewStoreAdoptsPersistedPair(t *testing.T) {
	repo := repofake.NewFakeCredentialsRepo()
	repo.Seed(testAccessToken, testRefreshToken)

	store := session.NewStore(repo)

	current := store.Current()
	require.True(t, current.IsAuthenticated())
	require.Equal(t, testAccessToken, current.AccessToken)
	require.Equal(t, testRefreshToken, current.RefreshToken)
}

func TestNewStoreReadFailureStartsLoggedOut(t *testing.T) {
	repo := repofake.NewFakeCredentialsRepo()
	repo.LoadErr = errors.New("disk on fire")

	store := session.NewStore(repo)
	require.False(t, store.Current().IsAuthenticated())
}

func TestNewStorePartialPairStartsLoggedOut(t *testing.T) {
	repo := repofake.NewFakeCredentialsRepo()
	repo.Seed(testAccessToken, "")

	store := session.NewStore(repo)
	require.False(t, store.Current().IsAuthenticated())
}

func TestLoginPersistsAndAuthenticates(t *testing.T) {
	repo := repofake.NewFakeCredentialsRepo()
	store := session.NewStore(repo)

	require.NoError(t, store.Login(testAccessToken, testRefreshToken))
	require.True(t, store.Current().IsAuthenticated())

	creds, err := repo.Load()
	require.NoError(t, err)
	require.Equal(t, testAccessToken, creds.AccessToken)
	require.Equal(t, testRefreshToken, creds.RefreshToken)
}

func TestLoginRejectsEmptyTokens(t *testing.T) {
	store := session.NewStore(repofake.NewFakeCredentialsRepo())

	require.ErrorIs(t, store.Login("", testRefreshToken), apperrors.ErrMissingCredential)
	require.ErrorIs(t, store.Login(testAccessToken, ""), apperrors.ErrMissingCredential)
	require.False(t, store.Current().IsAuthenticated())
}

func TestLoginPersistFailureLeavesLoggedOut(t *testing.T) {
	repo := repofake.NewFakeCredentialsRepo()
	repo.SaveErr = errors.New("disk full")
	store := session.NewStore(repo)

	require.Error(t, store.Login(testAccessToken, testRefreshToken))
	require.False(t, store.Current().IsAuthenticated())
}

func TestLoginLogoutSequenceConsistency(t *testing.T) {
	store := session.NewStore(repofake.NewFakeCredentialsRepo())

	// isAuthenticated must track the most recent operation across any
	// sequence of login/logout pairs
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Login(testAccessToken, testRefreshToken))
		require.True(t, store.Current().IsAuthenticated())

		require.NoError(t, store.Logout())
		require.False(t, store.Current().IsAuthenticated())
	}
}

func TestLogoutClearsBothTokens(t *testing.T) {
	repo := repofake.NewFakeCredentialsRepo()
	store := session.NewStore(repo)
	require.NoError(t, store.Login(testAccessToken, testRefreshToken))

	require.NoError(t, store.Logout())

	current := store.Current()
	require.False(t, current.IsAuthenticated())
	require.Empty(t, current.AccessToken)
	require.Empty(t, current.RefreshToken)

	_, err := repo.Load()
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLogoutIsIdempotent(t *testing.T) {
	store := session.NewStore(repofake.NewFakeCredentialsRepo())

	require.NoError(t, store.Logout())
	require.NoError(t, store.Logout())
	require.False(t, store.Current().IsAuthenticated())
}

func TestLogoutClearFailureStillLogsOut(t *testing.T) {
	repo := repofake.NewFakeCredentialsRepo()
	store := session.NewStore(repo)
	require.NoError(t, store.Login(testAccessToken, testRefreshToken))

	repo.ClearErr = errors.New("permission denied")
	require.Error(t, store.Logout())
	require.False(t, store.Current().IsAuthenticated())
}

func TestReloadRoundTrip(t *testing.T) {
	repo := repofake.NewFakeCredentialsRepo()
	store := session.NewStore(repo)
	require.NoError(t, store.Login(testAccessToken, testRefreshToken))

	// Simulated reload: a fresh store against the same persisted storage
	reloaded := session.NewStore(repo)
	current := reloaded.Current()
	require.True(t, current.IsAuthenticated())
	require.Equal(t, testAccessToken, current.AccessToken)
	require.Equal(t, testRefreshToken, current.RefreshToken)
}

func TestReloadAfterLogout(t *testing.T) {
	repo := repofake.NewFakeCredentialsRepo()
	store := session.NewStore(repo)
	require.NoError(t, store.Login(testAccessToken, testRefreshToken))
	require.NoError(t, store.Logout())

	reloaded := session.NewStore(repo)
	require.False(t, reloaded.Current().IsAuthenticated())
}

func TestSubscribeReceivesTransitions(t *testing.T) {
	store := session.NewStore(repofake.NewFakeCredentialsRepo())

	var observed []bool
	cancel := store.Subscribe(func(s session.Session) {
		observed = append(observed, s.IsAuthenticated())
	})
	defer cancel()

	require.NoError(t, store.Login(testAccessToken, testRefreshToken))
	require.NoError(t, store.Logout())
	require.Equal(t, []bool{true, false}, observed)
}

func TestSubscribeSkipsNoOpLogout(t *testing.T) {
	store := session.NewStore(repofake.NewFakeCredentialsRepo())

	calls := 0
	cancel := store.Subscribe(func(session.Session) { calls++ })
	defer cancel()

	require.NoError(t, store.Logout())
	require.Zero(t, calls)
}

func TestSubscribeCancelStopsNotifications(t *testing.T) {
	store := session.NewStore(repofake.NewFakeCredentialsRepo())

	calls := 0
	cancel := store.Subscribe(func(session.Session) { calls++ })
	cancel()

	require.NoError(t, store.Login(testAccessToken, testRefreshToken))
	require.Zero(t, calls)
}
