package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// healthHandler reports whether the record store is reachable.
func (s *Server) healthHandler(c *gin.Context) {
	s.log.Debug("Performing health checks...")

	status := make(map[string]string)
	overallStatus := http.StatusOK

	if err := s.db.Ping(c.Request.Context()); err != nil {
		status["database"] = "unavailable"
		overallStatus = http.StatusServiceUnavailable
		s.log.Warn("Health check failed: DB ping", "error", err)
	} else {
		status["database"] = "ok"
	}

	c.JSON(overallStatus, status)
}
