package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/todmy/oom-trainer/internal/generator"
	"github.com/todmy/oom-trainer/internal/receipt"
	"github.com/todmy/oom-trainer/internal/scoring"
)

// ServerConfig wires the engine configuration into the HTTP façade.
type ServerConfig struct {
	ProblemsPerDay int
	ReceiptSecret  string
	AllowedOrigins []string
	Generator      generator.Config
	Scoring        scoring.Config
}

type Server struct {
	router         *chi.Mux
	problemsPerDay int
	generatorCfg   generator.Config
	scoringCfg     scoring.Config
	receipts       *receipt.Service
}

func NewServer(cfg ServerConfig) *Server {
	if cfg.ProblemsPerDay <= 0 {
		cfg.ProblemsPerDay = 5
	}
	if cfg.Generator == (generator.Config{}) {
		cfg.Generator = generator.DefaultConfig()
	}
	if cfg.Scoring == (scoring.Config{}) {
		cfg.Scoring = scoring.DefaultConfig()
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:*", "https://*"}
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s := &Server{
		router:         r,
		problemsPerDay: cfg.ProblemsPerDay,
		generatorCfg:   cfg.Generator,
		scoringCfg:     cfg.Scoring,
		receipts:       receipt.NewService(receipt.Config{Secret: cfg.ReceiptSecret}),
	}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.Get("/health", s.handleHealth)

	// API v1; every endpoint is a pure function of its request.
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/daily", s.handleDaily)
		r.Post("/parse", s.handleParse)
		r.Post("/score", s.handleScore)
		r.Post("/submit", s.handleSubmit)
		r.Post("/summary", s.handleSummary)
		r.Get("/receipts/verify", s.handleVerifyReceipt)
	})
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Helper to send JSON responses
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
