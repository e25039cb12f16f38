// Package httpapi is the thin routing layer: it validates request shape and
// forwards to the registry.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hamed0406/keepalive/internal/domain"
	"github.com/hamed0406/keepalive/internal/registry"
	"github.com/hamed0406/keepalive/internal/report"
)

// Core is the registry surface the API needs.
type Core interface {
	Add(ctx context.Context, url string) (*domain.Endpoint, error)
	Refresh(ctx context.Context, code string) (*domain.Endpoint, error)
	List(ctx context.Context) (*domain.Document, error)
	Remove(ctx context.Context, code string) (*domain.Endpoint, error)
}

type Server struct {
	Logger   *zap.Logger
	Core     Core
	validate *validator.Validate
	started  time.Time
}

func NewServer(logger *zap.Logger, core Core) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		Logger:   logger,
		Core:     core,
		validate: validator.New(),
		started:  time.Now(),
	}
}

// Router builds the chi handler. requestsPerMinute <= 0 disables rate
// limiting (tests, local dev).
func (s *Server) Router(requestsPerMinute int) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.AllowAll().Handler)
	if requestsPerMinute > 0 {
		r.Use(httprate.LimitByIP(requestsPerMinute, time.Minute))
	}

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/links", func(r chi.Router) {
		r.Post("/", s.handleAdd)
		r.Get("/", s.handleList)
		r.Get("/{code}", s.handleStatus)
		r.Delete("/{code}", s.handleDelete)
	})

	return r
}

type addPayload struct {
	URL string `json:"url" validate:"required,url"`
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var p addPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "bad payload")
		return
	}
	if err := s.validate.Struct(p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid url")
		return
	}

	e, err := s.Core.Add(r.Context(), p.URL)
	if err != nil {
		var dup *registry.DuplicateError
		switch {
		case errors.As(err, &dup):
			writeJSON(w, http.StatusConflict, map[string]any{
				"error": "url already monitored",
				"code":  dup.Code,
			})
		case errors.Is(err, registry.ErrInvalidURL):
			writeError(w, http.StatusBadRequest, "invalid url")
		default:
			s.Logger.Error("add_failed", zap.String("url", p.URL), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "could not save endpoint")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"code":         e.Code,
		"status":       string(e.Status),
		"responseTime": e.ResponseTime,
	})
}

// handleStatus runs a fresh probe before reporting, so the caller always
// sees current reachability rather than the last sweep's.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	c := chi.URLParam(r, "code")
	e, err := s.Core.Refresh(r.Context(), c)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			writeError(w, http.StatusNotFound, "unknown code")
			return
		}
		s.Logger.Error("status_failed", zap.String("code", c), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not refresh endpoint")
		return
	}
	writeJSON(w, http.StatusOK, report.Summary(e, time.Now().UTC()))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	doc, err := s.Core.List(r.Context())
	if err != nil {
		s.Logger.Error("list_failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load registry")
		return
	}
	writeJSON(w, http.StatusOK, report.Build(doc, time.Now().UTC()))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	c := chi.URLParam(r, "code")
	removed, err := s.Core.Remove(r.Context(), c)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			writeError(w, http.StatusNotFound, "unknown code")
			return
		}
		s.Logger.Error("delete_failed", zap.String("code", c), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not delete endpoint")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deletedUrl": removed.URL})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	doc, err := s.Core.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"uptimeSeconds": int(time.Since(s.started).Seconds()),
		"totalLinks":    doc.Stats.TotalLinks,
		"activeLinks":   doc.Stats.ActiveLinks,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
