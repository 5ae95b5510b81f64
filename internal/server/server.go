// Package server implements the ConvoSage HTTP API: chat with session
// memory, product search, outlet search, and the embedded web page.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/nchapman/convosage/internal/agent"
	"github.com/nchapman/convosage/internal/config"
	"github.com/nchapman/convosage/internal/db"
	"github.com/nchapman/convosage/internal/logs"
	"github.com/nchapman/convosage/internal/rag"
	"github.com/nchapman/convosage/internal/tools"
	"github.com/nchapman/convosage/web"
)

type Server struct {
	cfg        *config.Config
	httpServer *http.Server
	memory     *agent.MemoryStore
	agent      *agent.Agent
	products   *rag.Store
	database   *db.DB
	startedAt  time.Time
}

func New(cfg *config.Config, products *rag.Store, database *db.DB) *Server {
	memory := agent.NewMemoryStore()

	s := &Server{
		cfg:       cfg,
		memory:    memory,
		agent:     agent.New(memory, tools.NewProductSearch(products), tools.NewOutletSearch(database)),
		products:  products,
		database:  database,
		startedAt: time.Now(),
	}

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: s.Handler(),
	}

	return s
}

// Handler builds the full route table wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/chat/history/", s.handleHistory)
	mux.HandleFunc("/chat/session/", s.handleDeleteSession)
	mux.HandleFunc("/chat/stats", s.handleStats)
	mux.HandleFunc("/products/search", s.handleProductSearch)
	mux.HandleFunc("/products", s.handleAllProducts)
	mux.HandleFunc("/products/", s.handleProductByID)
	mux.HandleFunc("/outlets/search", s.handleOutletSearch)
	mux.HandleFunc("/outlets", s.handleAllOutlets)
	mux.Handle("/", newStaticHandler())

	limiter := NewRateLimiter(s.cfg.RateLimit.RequestsPerMinute, s.cfg.RateLimit.Burst)
	cors := CORSMiddleware(s.cfg.Server.CORSOrigins)

	return LoggingMiddleware(cors(limiter.Middleware(mux)))
}

// Start begins serving in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			logs.Error("Server error", "error", err)
		}
	}()

	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

func newStaticHandler() http.Handler {
	staticFS, err := web.StaticFS()
	if err != nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Web page not available", http.StatusInternalServerError)
		})
	}
	return http.FileServer(http.FS(staticFS))
}
