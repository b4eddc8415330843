package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	courseplanner "github.com/jacobmichels/Course-Planner-Go"
)

type Server struct {
	courses  courseplanner.CourseService
	lookups  courseplanner.LookupRepository
	addr     string
	origins  []string
	location *time.Location
	now      func() time.Time
}

// NewServer wires the HTTP surface. loc is the timezone calendar exports are written in.
func NewServer(addr string, c courseplanner.CourseService, l courseplanner.LookupRepository, origins []string, loc *time.Location) Server {
	if loc == nil {
		loc = time.UTC
	}
	return Server{c, l, addr, origins, loc, time.Now}
}

func (s Server) Start(ctx context.Context) error {
	srv := http.Server{Addr: s.addr, Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	log.Info().Msgf("listening on %s", s.addr)

	// start server, respecting context cancelation
	errChan := make(chan error)
	go func() { errChan <- srv.ListenAndServe() }()
	select {
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		log.Info().Msg("server shutdown complete")
	}

	return nil
}

// Handler returns the routes wrapped in logging, panic recovery and CORS
func (s Server) Handler() http.Handler {
	r := httprouter.New()

	// register routes
	r.GET("/ping", s.pingHandler())
	r.GET("/course/:course_id", s.courseHandler())
	r.GET("/course/:course_id/calendar.ics", s.calendarHandler())
	r.GET("/courses/", s.coursesHandler())
	r.GET("/lookups", s.lookupsHandler())

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})

	var h http.Handler = r
	h = c.Handler(h)
	h = middleware.Recoverer(h)
	h = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request handled")
	})(h)
	h = requestID(h)
	h = hlog.NewHandler(log.Logger)(h)

	return h
}

// tags the request logger and the response with a fresh id
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", id)
		})
		next.ServeHTTP(w, r)
	})
}

// record never fails the request it describes
func (s Server) record(r *http.Request, lookup courseplanner.Lookup, started time.Time, err error) {
	lookup.ID = uuid.NewString()
	lookup.OK = err == nil
	if err != nil {
		lookup.Error = err.Error()
	}
	lookup.DurationMs = time.Since(started).Milliseconds()
	lookup.CreatedAt = started.UTC()

	if err := s.lookups.Record(context.WithoutCancel(r.Context()), lookup); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("failed to record lookup")
	}
}
