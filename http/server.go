package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/cdpsupport/cdpchat"
)

// DefaultShutdownTimeout bounds graceful shutdown.
const DefaultShutdownTimeout = 5 * time.Second

// ChatRequest is the JSON body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the JSON reply of POST /api/chat.
type ChatResponse struct {
	Response string `json:"response"`
}

// errorResponse carries a plain-language error message; internal detail
// never reaches the chat UI.
type errorResponse struct {
	Error string `json:"error"`
}

// Server serves the chat API. Each request is answered synchronously in
// one shot; the answerer reads an immutable index snapshot so requests
// share no mutable state.
type Server struct {
	server   *http.Server
	listener net.Listener

	Addr     string
	Answerer cdpchat.Answerer
	Logger   *slog.Logger
}

// NewServer creates a Server with defaults applied.
func NewServer() *Server {
	return &Server{
		Addr:   ":8080",
		Logger: slog.Default(),
	}
}

// Open begins listening on the configured address and starts serving in
// a background goroutine.
func (s *Server) Open() error {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", s.handleChat)

	s.server = &http.Server{
		Addr:    s.Addr,
		Handler: s.logRequests(mux),
	}

	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.listener = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("http server stopped", "err", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL the server is listening on.
// Useful for tests that bind to port 0.
func (s *Server) URL() string {
	if s.listener == nil {
		return ""
	}
	return "http://" + s.listener.Addr().String()
}

// handleChat implements POST /api/chat.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Request body must be JSON with a \"message\" field."})
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No message provided."})
		return
	}

	result, err := s.Answerer.Answer(r.Context(), req.Message)
	if err != nil {
		s.Logger.Error("answer failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Something went wrong. Please try again."})
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Response: cdpchat.FormatAnswer(result)})
}

// logRequests logs each request with method, path, and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		next.ServeHTTP(w, r)
		s.Logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(begin),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
