package console

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Snider/Quotebox/pkg/metrics"
	"github.com/Snider/Quotebox/pkg/widget"
)

// NewQuotePath is where the page's new-quote control posts to.
const NewQuotePath = "/new-quote"

// Server hosts the widget page and its JSON API.
type Server struct {
	ctl      *widget.Controller
	log      *slog.Logger
	metrics  *metrics.Collector
	shareURL string
	port     string
}

// NewServer creates a server for ctl. A nil collector disables /metrics.
func NewServer(ctl *widget.Controller, port string, log *slog.Logger, collector *metrics.Collector) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{
		ctl:      ctl,
		log:      log,
		metrics:  collector,
		shareURL: widget.ShareURL,
		port:     port,
	}
}

// SetShareURL overrides the share control target.
func (s *Server) SetShareURL(url string) {
	s.shareURL = url
}

// Handler returns the router for all server routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.log))

	r.Get("/", s.handleRoot)
	r.Post(NewQuotePath, s.handleNewQuote)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/quote", s.handleGetQuote)
		r.Post("/quote", s.handlePostQuote)
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}
	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}

// handleRoot renders the widget page from the current state.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	page := widget.NewPage(s.ctl.Snapshot(), NewQuotePath)
	page.ShareURL = s.shareURL

	var buf bytes.Buffer
	if err := widget.Render(&buf, page); err != nil {
		s.log.Error("render failed", "err", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

// handleNewQuote runs a request and sends the browser back to the page.
// Failures are logged only; the page keeps showing the previous quote.
func (s *Server) handleNewQuote(w http.ResponseWriter, r *http.Request) {
	if _, err := s.ctl.RequestNewQuote(r.Context()); err != nil {
		s.logRequestError(r, err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// quoteResponse is the JSON body of the /api/quote endpoints.
type quoteResponse struct {
	widget.State
	ShareURL string `json:"share_url"`
	Busy     bool   `json:"busy,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (s *Server) handleGetQuote(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, quoteResponse{State: s.ctl.Snapshot(), ShareURL: s.shareURL})
}

func (s *Server) handlePostQuote(w http.ResponseWriter, r *http.Request) {
	st, err := s.ctl.RequestNewQuote(r.Context())
	resp := quoteResponse{State: st, ShareURL: s.shareURL}
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, widget.ErrBusy):
		resp.Busy = true
		writeJSON(w, http.StatusOK, resp)
	default:
		s.logRequestError(r, err)
		resp.Error = err.Error()
		writeJSON(w, http.StatusBadGateway, resp)
	}
}

func (s *Server) logRequestError(r *http.Request, err error) {
	if errors.Is(err, widget.ErrBusy) {
		s.log.Debug("new quote ignored, request in flight", "request_id", chimiddleware.GetReqID(r.Context()))
		return
	}
	s.log.Error("new quote failed", "err", err, "request_id", chimiddleware.GetReqID(r.Context()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Port returns the server's port.
func (s *Server) Port() string {
	return s.port
}

// URL returns the full server URL.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%s", s.port)
}
