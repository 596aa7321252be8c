package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/finsight/dashboard/backend"
	apperrors "github.com/finsight/dashboard/internal/errors"
	"github.com/finsight/dashboard/session"
	"github.com/finsight/dashboard/session/repofake"
)

const (
	testEmail    = "owner@acme.example"
	testPassword = "Password1"
	testAccess   = "tok123"
	testRefresh  = "ref456"
)

type testBackendConfig struct {
	baseURL string
}

func (c testBackendConfig) GetAPIBaseURL() string        { return c.baseURL }
func (c testBackendConfig) GetAPITimeout() time.Duration { return 5 * time.Second }

// fixture wires a client against a fake analysis service.
type fixture struct {
	store  *session.Store
	client *backend.Client
	server *httptest.Server
	// requests seen by the fake backend, by "METHOD path"
	hits map[string]int
}

func newFixture(t *testing.T, handler http.HandlerFunc) *fixture {
	t.Helper()

	f := &fixture{hits: make(map[string]int)}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits[r.Method+" "+r.URL.Path]++
		handler(w, r)
	}))
	t.Cleanup(f.server.Close)

	f.store = session.NewStore(repofake.NewFakeCredentialsRepo())
	f.client = backend.New(testBackendConfig{baseURL: f.server.URL}, backend.NewStoreTokenSource(f.store))
	return f
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestLoginReturnsTokenPair(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var creds struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, testEmail, creds.Email)
		require.Equal(t, testPassword, creds.Password)

		writeJSON(w, http.StatusOK, backend.TokenPair{
			AccessToken:  testAccess,
			RefreshToken: testRefresh,
			TokenType:    "bearer",
			ExpiresIn:    86400,
		})
	})

	pair, err := f.client.Login(context.Background(), testEmail, testPassword)
	require.NoError(t, err)
	require.Equal(t, testAccess, pair.AccessToken)
	require.Equal(t, testRefresh, pair.RefreshToken)
}

func TestLoginRejectionSurfacesDetail(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid email or password"})
	})

	_, err := f.client.Login(context.Background(), testEmail, "wrong")
	require.Error(t, err)

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Invalid email or password", apiErr.Detail)

	// A failed exchange must leave the session untouched
	require.False(t, f.store.Current().IsAuthenticated())
}

func TestRegister(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST /auth/register", r.Method+" "+r.URL.Path)

		var reg backend.Registration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reg))
		require.Equal(t, "Acme Traders", reg.CompanyName)
		require.Equal(t, "retail", reg.IndustryType)

		writeJSON(w, http.StatusCreated, map[string]any{"id": 1, "email": reg.Email})
	})

	err := f.client.Register(context.Background(), backend.Registration{
		Email:        testEmail,
		Password:     testPassword,
		CompanyName:  "Acme Traders",
		IndustryType: "retail",
	})
	require.NoError(t, err)
}

func TestAuthenticatedRequestCarriesBearerToken(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer "+testAccess, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, backend.FinancialSummary{HealthScore: 72, HealthStatus: "caution"})
	})
	require.NoError(t, f.store.Login(testAccess, testRefresh))

	summary, err := f.client.FinancialSummary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 72, summary.HealthScore)
	require.Equal(t, "caution", summary.HealthStatus)
}

func TestAuthenticatedRequestWithoutSession(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the backend without a credential")
	})

	_, err := f.client.FinancialSummary(context.Background())
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
	require.Zero(t, len(f.hits))
}

func TestRejectedTokenMapsToUnauthorized(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Token expired"})
	})
	require.NoError(t, f.store.Login("expired-token", testRefresh))

	_, err := f.client.RiskAssessment(context.Background())
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestServerErrorIsNotUnauthorized(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "boom"})
	})
	require.NoError(t, f.store.Login(testAccess, testRefresh))

	_, err := f.client.ListReports(context.Background())
	require.Error(t, err)
	require.False(t, apperrors.Is(err, apperrors.ErrUnauthorized))
}

func TestGenerateReport(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST /api/reports/generate", r.Method+" "+r.URL.Path)

		var req backend.ReportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "financial_health", req.ReportType)

		writeJSON(w, http.StatusCreated, backend.ReportSummary{ID: 9, ReportType: req.ReportType, Status: "completed"})
	})
	require.NoError(t, f.store.Login(testAccess, testRefresh))

	summary, err := f.client.GenerateReport(context.Background(), backend.ReportRequest{ReportType: "financial_health"})
	require.NoError(t, err)
	require.Equal(t, 9, summary.ID)
}

func TestUploadStatement(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "q1-statement.csv", header.Filename)

		writeJSON(w, http.StatusCreated, backend.UploadRecord{ID: 3, OriginalFilename: header.Filename, ProcessingStatus: "pending"})
	})
	require.NoError(t, f.store.Login(testAccess, testRefresh))

	record, err := f.client.UploadStatement(context.Background(), "q1-statement.csv", strings.NewReader("date,amount\n2026-01-01,100\n"))
	require.NoError(t, err)
	require.Equal(t, "pending", record.ProcessingStatus)
}

func TestValidateStatementFilename(t *testing.T) {
	require.NoError(t, backend.ValidateStatementFilename("ledger.csv"))
	require.NoError(t, backend.ValidateStatementFilename("statement.xlsx"))
	require.Error(t, backend.ValidateStatementFilename("notes.txt"))
	require.Error(t, backend.ValidateStatementFilename(".csv"))
}

func TestCancelledContextAbortsRequest(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	require.NoError(t, f.store.Login(testAccess, testRefresh))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.client.FinancialSummary(ctx)
	require.Error(t, err)
}
