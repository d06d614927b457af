package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/storyreader-backend/internal/config"
	"github.com/heartmarshall/storyreader-backend/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Reading       *ReadingHandler
	Health        *HealthHandler
	RateLimiter   *middleware.RateLimiter
	TextPerMinute int
	CORS          config.CORSConfig
	Logger        *slog.Logger
}

// NewRouter builds the HTTP handler tree. Every route runs behind request
// ID, access log, panic recovery and CORS; the ad-hoc text endpoints are
// additionally rate limited per client IP.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	mux.HandleFunc("GET /api/stories", deps.Reading.ListStories)
	mux.HandleFunc("GET /api/stories/{id}", deps.Reading.GetStory)
	mux.HandleFunc("GET /api/stories/{id}/document", deps.Reading.Document)
	mux.HandleFunc("POST /api/stories/{id}/navigate", deps.Reading.Navigate)
	mux.HandleFunc("POST /api/stories/{id}/utterance", deps.Reading.Utterance)

	limit := func(h http.HandlerFunc) http.Handler { return h }
	if deps.RateLimiter != nil {
		mw := deps.RateLimiter.Limit(deps.TextPerMinute)
		limit = func(h http.HandlerFunc) http.Handler { return mw(h) }
	}
	mux.Handle("POST /api/segment", limit(deps.Reading.Segment))
	mux.Handle("POST /api/syllabify", limit(deps.Reading.Syllabify))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.CORS),
	)(mux)
}
