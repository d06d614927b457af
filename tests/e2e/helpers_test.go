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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/storyreader-backend/internal/adapter/postgres"
	"github.com/heartmarshall/storyreader-backend/internal/adapter/postgres/story"
	"github.com/heartmarshall/storyreader-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/storyreader-backend/internal/app/seeder"
	"github.com/heartmarshall/storyreader-backend/internal/config"
	"github.com/heartmarshall/storyreader-backend/internal/domain"
	"github.com/heartmarshall/storyreader-backend/internal/service/reading"
	"github.com/heartmarshall/storyreader-backend/internal/transport/middleware"
	"github.com/heartmarshall/storyreader-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Repo   *story.Repo
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper) with the bundled catalog
// seeded.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	repo := story.New(pool)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_, err := seeder.NewPipeline(logger, repo, postgres.NewTxManager(pool), seeder.Config{BatchSize: 100}).Run(ctx)
	require.NoError(t, err, "seed bundled catalog")

	svc := reading.NewService(logger, repo, domain.ReadingSettings{
		DefaultSpeechRate: 1.0,
		MinSpeechRate:     0.5,
		MaxSpeechRate:     2.0,
		MaxTextLength:     20000,
		MaxBatchWords:     500,
		Workers:           4,
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(rest.RouterDeps{
		Reading:       rest.NewReadingHandler(svc, logger),
		Health:        rest.NewHealthHandler(pool, "test-version"),
		RateLimiter:   limiter,
		TextPerMinute: 1000,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         86400,
		},
		Logger: logger,
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Repo:   repo,
	}
}

// getJSON issues a GET and decodes the JSON body into a generic map.
func (ts *testServer) getJSON(t *testing.T, path string) (int, map[string]any) {
	t.Helper()

	resp, err := ts.Client.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeBody(t, resp.Body)
}

// postJSON marshals body, POSTs it and decodes the JSON response.
func (ts *testServer) postJSON(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := ts.Client.Post(ts.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	return resp.StatusCode, decodeBody(t, resp.Body)
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&out))
	return out
}

// storyIDBySlug resolves a seeded story's ID.
func (ts *testServer) storyIDBySlug(t *testing.T, slug string) string {
	t.Helper()

	s, err := ts.Repo.GetBySlug(context.Background(), slug)
	require.NoError(t, err)
	return s.ID.String()
}
