//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/hifz-backend/internal/adapter/gamification"
	"github.com/heartmarshall/hifz-backend/internal/adapter/postgres"
	itemrepo "github.com/heartmarshall/hifz-backend/internal/adapter/postgres/item"
	reviewlogrepo "github.com/heartmarshall/hifz-backend/internal/adapter/postgres/reviewlog"
	"github.com/heartmarshall/hifz-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/hifz-backend/internal/domain"
	"github.com/heartmarshall/hifz-backend/internal/service/hifz"
	"github.com/heartmarshall/hifz-backend/internal/transport/middleware"
	"github.com/heartmarshall/hifz-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper). Rewards are discarded.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	items := itemrepo.New(pool)
	reviews := reviewlogrepo.New(pool)

	svc := hifz.NewService(logger, items, reviews, gamification.Noop{}, txm, hifz.Config{
		Scheduler:       domain.DefaultSchedulerConfig(),
		DueLimitDefault: 20,
		DueLimitMax:     200,
		MaxRangeSize:    286,
	})

	handler := rest.NewRouter(
		rest.NewHifzHandler(svc, logger),
		rest.NewHealthHandler(pool, "e2e"),
		logger,
	)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON issues a request with the learner header set and decodes the JSON
// response body into a generic map.
func (ts *testServer) doJSON(t *testing.T, method, path string, learnerID uuid.UUID, body any) (int, map[string]any) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	if learnerID != uuid.Nil {
		req.Header.Set(middleware.LearnerHeader, learnerID.String())
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

	return resp.StatusCode, result
}
