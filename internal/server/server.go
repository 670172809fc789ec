package server

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Houeta/restobot/internal/metrics"
	"github.com/Houeta/restobot/internal/notifier"
	"github.com/Houeta/restobot/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed static/index.html
var indexHTML []byte

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// Enqueuer submits notification jobs for background delivery.
// Submission is non-blocking; the result of delivery is never observed here.
type Enqueuer interface {
	Enqueue(job notifier.Job) bool
}

// DBPinger reports whether the record store is reachable.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// Server is the HTTP API layer. It orchestrates the record store and hands
// notification work to the background dispatcher.
type Server struct {
	log        *slog.Logger
	repo       repository.Interface
	dispatcher Enqueuer
	metrics    *metrics.Metrics
	db         DBPinger
	router     *gin.Engine
}

// New creates the API server and registers all routes.
func New(
	log *slog.Logger,
	repo repository.Interface,
	dispatcher Enqueuer,
	mtr *metrics.Metrics,
	reg *prometheus.Registry,
	db DBPinger,
) *Server {
	srv := &Server{
		log:        log,
		repo:       repo,
		dispatcher: dispatcher,
		metrics:    mtr,
		db:         db,
	}

	router := gin.New()
	router.Use(gin.Recovery(), srv.observeRequests())

	router.GET("/", srv.indexHandler)
	router.GET("/healthz", srv.healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	{
		api.POST("/login", srv.loginHandler)
		api.POST("/check_telegram", srv.checkTelegramHandler)
		api.GET("/employees", srv.employeesHandler)
		api.POST("/tasks", srv.createTasksHandler)
	}

	srv.router = router
	return srv
}

// Router exposes the gin engine, mainly for handler tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the HTTP server on the given port, binding all interfaces,
// and shuts it down gracefully when the context is canceled.
func (s *Server) Run(ctx context.Context, port int) {
	readTimeout := 5
	writeTimeout := 10
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.router,
		ReadTimeout:  time.Duration(readTimeout) * time.Second,
		WriteTimeout: time.Duration(writeTimeout) * time.Second,
	}

	s.log.InfoContext(ctx, "Starting HTTP server", "port", port)

	var err error
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(readTimeout)*time.Second)
		defer cancel()
		s.log.InfoContext(ctx, "HTTP server shutting down.")
		if err = server.Shutdown(shutdownCtx); err != nil {
			s.log.ErrorContext(ctx, "HTTP server failed to shutdown", "error", err)
			return
		}
	case err = <-serverErr:
		s.log.ErrorContext(ctx, "HTTP server failed", "error", err)
	}
}

// observeRequests counts handled requests by route and status.
func (s *Server) observeRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		s.metrics.HTTPRequests.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// indexHandler serves the embedded landing page.
func (s *Server) indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}
