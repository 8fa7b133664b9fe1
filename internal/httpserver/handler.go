package httpserver

import (
	"retain-api/internal/middleware"
	"retain-api/internal/model"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "retain-api/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	Api         = "/api/v1"
	InternalApi = "/internal/api/v1"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	mw := middleware.New(srv.l, srv.jwtManager, srv.internalKeyHash)

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := srv.gin.Group(Api)
	api.Use(mw.Auth())

	churn := api.Group("/churn")
	churn.POST("/score", mw.RequireRoles(model.RoleAdmin, model.RoleAnalyst), srv.score)
	churn.POST("/feedback", mw.RequireRoles(model.RoleAdmin, model.RoleAnalyst), srv.feedback)
	churn.GET("/decisions", srv.listDecisions)
	churn.GET("/decisions/:id", srv.detailDecision)

	// Operator routes
	internal := srv.gin.Group(InternalApi)
	internal.Use(mw.InternalKey())
	internal.POST("/churn/calibrate", srv.calibrate)

	return nil
}
