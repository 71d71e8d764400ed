// Package server exposes the extraction pipeline and its storage over HTTP,
// and serves the static dashboard. All JSON endpoints live under /api/.
package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/varunupadhyay1669-gif/ai-tutor-board/internal/logger"
)

// Server wraps the gin engine with the app's routes mounted.
type Server struct {
	engine *gin.Engine
}

// New builds the HTTP server: CORS, request-id and logging middleware,
// the /api routes, and static dashboard serving for everything else.
func New(h *Handlers, staticRoot string, log *logger.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(requestLogger(log))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/config", h.Config)
		api.GET("/students", h.ListStudents)
		api.POST("/students", h.CreateStudent)
		api.GET("/students/:id/dashboard", h.Dashboard)
		api.POST("/trial", h.Trial)
		api.POST("/session", h.Session)
	}

	if staticRoot != "" {
		static := http.FileServer(gin.Dir(staticRoot, false))
		r.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.Method != http.MethodGet {
				c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
				return
			}
			c.Header("Cache-Control", "no-store")
			static.ServeHTTP(c.Writer, c.Request)
		})
	}

	return &Server{engine: r}
}

// Engine returns the underlying gin engine, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves on the given address until the listener fails.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// requestLogger tags each request with an id and logs method, path,
// status, and latency on completion.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := uuid.NewString()
		c.Header("X-Request-ID", reqID)

		start := time.Now()
		c.Next()

		log.Info("request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}
