package httpserver

import (
	"net/http"

	"retain-api/pkg/errors"
	"retain-api/pkg/response"

	"github.com/gin-gonic/gin"
)

const serviceName = "retain-api"

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the service and its dependencies are healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} response.Resp "A dependency is down"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.healthCheck.PingContext: %v", err)
		response.HttpError(c, errors.NewHTTPError(50301, "Database connection failed", http.StatusServiceUnavailable))
		return
	}

	storage := "disabled"
	if srv.store != nil {
		storage = "connected"
		if err := srv.store.HealthCheck(ctx); err != nil {
			srv.l.Warnf(ctx, "internal.httpserver.healthCheck.HealthCheck: %v", err)
			storage = "degraded"
		}
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"database": "connected",
		"storage":  storage,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the service is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(50301, "Database connection not available", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":   "ready",
		"service":  serviceName,
		"database": "connected",
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
	})
}
