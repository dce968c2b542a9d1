package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/careerhub/internal/analyzer"
	"github.com/jonathan/careerhub/internal/chat"
	"github.com/jonathan/careerhub/internal/config"
	"github.com/jonathan/careerhub/internal/dashboard"
	"github.com/jonathan/careerhub/internal/db"
	"github.com/jonathan/careerhub/internal/jobsearch"
	"github.com/jonathan/careerhub/internal/llm"
	"github.com/jonathan/careerhub/internal/resume"
	"github.com/jonathan/careerhub/internal/server/middleware"
	"github.com/jonathan/careerhub/internal/server/ratelimit"
)

// ResumeStore is the persistence surface the resume handlers need.
type ResumeStore interface {
	LoadOrInit(ctx context.Context, userID uuid.UUID) (resume.State, error)
	SaveResume(ctx context.Context, userID uuid.UUID, s resume.State) error
}

// Analyzer scores a resume against a job description.
type Analyzer interface {
	Analyze(ctx context.Context, state resume.State, jobDescription string) (*analyzer.Result, error)
}

// ChatService runs chat turns and serves history.
type ChatService interface {
	Send(ctx context.Context, userID uuid.UUID, content string) (*db.ChatMessage, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]db.ChatMessage, error)
}

// DashboardService assembles the landing-page payload.
type DashboardService interface {
	Load(ctx context.Context, userID uuid.UUID) (*dashboard.Dashboard, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	llmClient   llm.Client
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler

	resumes   ResumeStore
	searcher  jobsearch.Searcher
	analyzer  Analyzer
	chat      ChatService
	dashboard DashboardService
}

// New creates a new server instance
func New(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	llmClient, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	searchClient := jobsearch.NewClient(cfg.RapidAPIKey, nil)

	s := &Server{
		db:        database,
		llmClient: llmClient,
		resumes:   database,
		searcher:  searchClient,
		analyzer:  analyzer.New(llmClient),
		chat:      chat.New(database, llmClient),
		dashboard: dashboard.New(database, searchClient, llmClient, cfg.DefaultLocation),
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())
	s.userService = NewUserService(database, cfg.Password)
	s.jwtService = NewJWTService(cfg.JWT)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // model calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /v1/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", s.authHandler.Login)

	authed := middleware.Auth(s.jwtService.AsTokenValidator())
	protect := func(h http.HandlerFunc) http.Handler { return authed(h) }

	mux.Handle("GET /v1/resume", protect(s.handleGetResume))
	mux.Handle("PUT /v1/resume", protect(s.handlePutResume))
	mux.Handle("PATCH /v1/resume", protect(s.handlePatchResume))
	mux.Handle("POST /v1/analyzer", protect(s.handleAnalyze))
	mux.Handle("POST /v1/jobs/search", protect(s.handleJobSearch))
	mux.Handle("GET /v1/chat/messages", protect(s.handleChatHistory))
	mux.Handle("POST /v1/chat/messages", protect(s.handleChatSend))
	mux.Handle("GET /v1/dashboard", protect(s.handleDashboard))
	mux.Handle("DELETE /v1/auth/account", protect(s.handleDeleteAccount))

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier (IP address) from the request.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
