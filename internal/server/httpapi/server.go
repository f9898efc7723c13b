// Package httpapi exposes the REST boundary: registration, login, and the
// bearer-token protected task routes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/akarpovs/tasktracker/internal/logging"
	"github.com/akarpovs/tasktracker/internal/server/services"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type Server struct {
	address    string
	logger     logging.Logger
	auth       *services.AuthService
	tasks      *services.TaskService
	jwtSecret  []byte
	corsOrigin string
}

func NewServer(addr string, l logging.Logger, as *services.AuthService, ts *services.TaskService, secretKey, corsOrigin string) *Server {
	return &Server{
		address:    addr,
		logger:     l.With("module", "httpapi"),
		auth:       as,
		tasks:      ts,
		jwtSecret:  []byte(secretKey),
		corsOrigin: corsOrigin,
	}
}

// Routes builds the router. Task routes sit behind the auth middleware; the
// handlers themselves only consume the identity it injected.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	api.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	protected := api.PathPrefix("/tasks").Subrouter()
	protected.Use(s.authMiddleware)
	protected.HandleFunc("", s.handleCreateTask).Methods(http.MethodPost)
	protected.HandleFunc("", s.handleListTasks).Methods(http.MethodGet)
	protected.HandleFunc("/{id}", s.handleUpdateTask).Methods(http.MethodPut)
	protected.HandleFunc("/{id}", s.handleDeleteTask).Methods(http.MethodDelete)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{s.corsOrigin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	)

	return cors(s.logRequests(r))
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info(r.Context(), "request",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
