package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/bnema/gathering-relay/internal/adapters/http/handler"
	"github.com/bnema/gathering-relay/internal/adapters/http/middleware"
	"github.com/bnema/gathering-relay/internal/ports"
)

type RouterConfig struct {
	IsProduction bool
	// ServiceName enables otelgin tracing when set.
	ServiceName string
}

// NewEngine builds the ops engine with the standard middleware chain.
func NewEngine(cfg RouterConfig) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if cfg.ServiceName != "" {
		engine.Use(otelgin.Middleware(cfg.ServiceName))
	}
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger())

	return engine
}

func SetupRoutes(router *gin.Engine, relay handler.StatusProvider, directory ports.CommunityDirectory) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	sessionsHandler := handler.NewSessionsHandler(relay)
	SessionsRouter(router.Group("/sessions"), sessionsHandler)

	communitiesHandler := handler.NewCommunitiesHandler(directory)
	router.GET("/communities", communitiesHandler.List)
}

func SessionsRouter(rg *gin.RouterGroup, h *handler.SessionsHandler) {
	rg.GET("", h.List)
	rg.GET("/:code", h.Get)
}
