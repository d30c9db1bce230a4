package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/kapu/character-lookup-go/internal/constants"
	"github.com/kapu/character-lookup-go/internal/widget"
)

// Options configures the HTTP widget.
type Options struct {
	Addr            string
	SessionTTL      time.Duration
	ShutdownTimeout time.Duration
	JanitorInterval time.Duration
}

// Server serves the lookup widget page with one widget per browser session.
type Server struct {
	opts     Options
	sessions *sessionStore
	logger   *zap.Logger
	handler  http.Handler
}

// New creates a server. newWidget builds a fresh widget, with its own
// history, for every session.
func New(opts Options, newWidget func() *widget.Widget, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Addr == "" {
		opts.Addr = constants.ServerConfig.DefaultAddr
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = constants.ServerConfig.SessionTTL
	}
	if opts.JanitorInterval <= 0 {
		opts.JanitorInterval = constants.ServerConfig.JanitorInterval
	}

	s := &Server{
		opts:     opts,
		sessions: newSessionStore(opts.SessionTTL, newWidget, logger),
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("POST /search", s.handleSearch)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	s.handler = mux

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	janitorCtx, stopJanitor := context.WithCancel(ctx)
	defer stopJanitor()

	var wg conc.WaitGroup
	errCh := make(chan error, 1)

	wg.Go(func() {
		s.sessions.runJanitor(janitorCtx, s.opts.JanitorInterval)
	})
	wg.Go(func() {
		s.logger.Info("Widget server listening", zap.String("addr", listener.Addr().String()))
		if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	})

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down widget server")
	case serveErr = <-errCh:
		s.logger.Error("Widget server failed", zap.Error(serveErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && serveErr == nil {
		serveErr = err
	}

	stopJanitor()
	wg.Wait()
	return serveErr
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.opts.ShutdownTimeout > 0 {
		return s.opts.ShutdownTimeout
	}
	return constants.ServerConfig.ShutdownTimeout
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	s.renderPage(w, sess)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.ServerConfig.MaxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	sess := s.session(w, r)
	term := r.PostForm.Get("term")
	state := sess.widget.Submit(r.Context(), term)

	s.logger.Debug("Search attempt",
		zap.String("session", sess.id),
		zap.String("term", term),
		zap.Bool("detail_visible", state.DetailVisible),
		zap.Bool("error_visible", state.ErrorVisible),
	)

	s.renderPage(w, sess)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	entries := sess.widget.Lookup().History().Snapshot()

	records := make([]json.RawMessage, 0, len(entries))
	for _, entry := range entries {
		raw, err := entry.MarshalRaw()
		if err != nil {
			s.logger.Error("Failed to encode history entry", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		records = append(records, raw)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(struct {
		Count   int               `json:"count"`
		History []json.RawMessage `json:"history"`
	}{len(records), records}); err != nil {
		s.logger.Warn("Failed to write history response", zap.Error(err))
	}
}

func (s *Server) renderPage(w http.ResponseWriter, sess *session) {
	html, err := sess.widget.RenderHTML()
	if err != nil {
		s.logger.Error("Failed to render widget page", zap.String("session", sess.id), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// session resolves the caller's session from its cookie, creating one when
// the cookie is missing or expired.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session {
	if cookie, err := r.Cookie(constants.ServerConfig.SessionCookie); err == nil {
		if sess := s.sessions.get(cookie.Value); sess != nil {
			return sess
		}
	}

	sess := s.sessions.create()
	http.SetCookie(w, &http.Cookie{
		Name:     constants.ServerConfig.SessionCookie,
		Value:    sess.id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}
