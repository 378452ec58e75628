//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/laborcrm-backend/internal/app"
	authpkg "github.com/heartmarshall/laborcrm-backend/internal/auth"
	"github.com/heartmarshall/laborcrm-backend/internal/config"
	"github.com/heartmarshall/laborcrm-backend/internal/domain"
	"github.com/heartmarshall/laborcrm-backend/internal/metrics"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{ShutdownTimeout: 5 * time.Second},
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		Search:        config.SearchConfig{DefaultLimit: 10, MaxLimit: 50, MaxSuggestions: 20},
		Audit:         config.AuditConfig{WriteTimeout: 5 * time.Second},
		Notifications: config.NotificationsConfig{ReadRetentionDays: 90},
		Metrics:       config.MetricsConfig{Enabled: true},
	}
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig()

	srv := app.NewServer(cfg, logger, pool, nil, metrics.New())
	httpSrv := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		httpSrv.Close()
		srv.Close()
	})

	return &testServer{
		URL:    httpSrv.URL,
		Client: httpSrv.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// request sends a JSON request and returns the status and raw body.
func (ts *testServer) request(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// call sends a request and decodes a JSON object response.
func (ts *testServer) call(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	status, raw := ts.request(t, method, path, token, body)
	if len(raw) == 0 {
		return status, nil
	}
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return status, out
}

// ---------------------------------------------------------------------------
// Seed helpers.
// ---------------------------------------------------------------------------

// createUser inserts an active user with the given role and returns a valid
// access token and the user's id.
func createUser(t *testing.T, ts *testServer, role domain.UserRole) (string, uuid.UUID) {
	t.Helper()

	user := testhelper.SeedUser(t, ts.Pool, role, "")
	tok, err := ts.jwt.GenerateAccessToken(user.ID, role)
	require.NoError(t, err, "generate token")
	return tok, user.ID
}

// createClient inserts a CLIENT user with a profile and returns its id.
func createClient(t *testing.T, ts *testServer, name, company string) uuid.UUID {
	t.Helper()
	return testhelper.SeedClient(t, ts.Pool, name, company).ID
}

// createCase inserts a case owned by clientID and lawyerID.
func createCase(t *testing.T, ts *testServer, title string, clientID, lawyerID uuid.UUID) uuid.UUID {
	t.Helper()
	return testhelper.SeedCase(t, ts.Pool, title, clientID, lawyerID)
}

// items extracts an array field from a decoded object.
func items(t *testing.T, obj map[string]any, field string) []any {
	t.Helper()
	arr, ok := obj[field].([]any)
	require.True(t, ok, "expected %q array in %v", field, obj)
	return arr
}

// object extracts a nested object field.
func object(t *testing.T, obj map[string]any, field string) map[string]any {
	t.Helper()
	m, ok := obj[field].(map[string]any)
	require.True(t, ok, "expected %q object in %v", field, obj)
	return m
}

// auditCount returns the number of audit records stored for an entity id.
func auditCount(t *testing.T, ts *testServer, entityID string, action domain.AuditAction) int {
	t.Helper()

	var n int
	err := ts.Pool.QueryRow(context.Background(),
		`SELECT count(*) FROM audit_logs WHERE entity_id = $1 AND action = $2`, entityID, string(action),
	).Scan(&n)
	require.NoError(t, err)
	return n
}
