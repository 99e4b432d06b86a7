package rpc

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mkarpinski/eventcal/pkg/eventcal/dispatch"
	"github.com/mkarpinski/eventcal/pkg/eventcal/domain"
	"github.com/mkarpinski/eventcal/pkg/eventcal/observability"
)

const rpcPath = "/rpc"

// Server exposes a dispatcher's operation surface over HTTP. Every
// request runs against a fresh store handle through the dispatcher's
// local path, one request to completion at a time per connection.
type Server struct {
	d      *dispatch.Dispatcher
	logger *slog.Logger
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithServerLogger sets the structured logger. nil disables logging.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// NewServer builds a server around the given dispatcher.
func NewServer(d *dispatch.Dispatcher, opts ...ServerOption) *Server {
	s := &Server{d: d}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP handler serving the protocol endpoint and a
// health check.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(rpcPath, s.handleRPC)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return s.requestLogger(mux)
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeResponse(w, http.StatusMethodNotAllowed, response{
			Error: &wireError{Kind: kindTransport, Message: "method not allowed"},
		})
		return
	}

	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResponse(w, http.StatusBadRequest, response{
			Error: &wireError{Kind: kindValidation, Field: "request", Message: "malformed request body"},
		})
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	callLog := observability.EnrichLogger(s.logger, req.ID, req.Op, "rpc")

	result, err := s.d.Call(r.Context(), req.Op, req.Args, false)
	if err != nil {
		if callLog != nil {
			callLog.Warn("call failed", slog.String("error", err.Error()))
		}
		writeResponse(w, statusFor(err), response{ID: req.ID, Error: encodeError(err)})
		return
	}
	if callLog != nil {
		callLog.Debug("call served")
	}
	writeResponse(w, http.StatusOK, response{ID: req.ID, Result: result})
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest
	case domain.IsNotFound(err):
		return http.StatusNotFound
	case dispatch.IsUnknownOp(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeResponse(w http.ResponseWriter, status int, res response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(res); err != nil {
		_, _ = w.Write([]byte(`{"error":{"kind":"internal","message":"encode response"}}`))
	}
}

// requestLogger logs one line per request with a generated request id.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.logger == nil {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			slog.String("request_id", uuid.NewString()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
