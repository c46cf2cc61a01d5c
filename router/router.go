package router

import (
	"github.com/CorrelAid/newsletter_subscription/config"
	"github.com/CorrelAid/newsletter_subscription/handlers"
	"github.com/CorrelAid/newsletter_subscription/middleware"
	"github.com/CorrelAid/newsletter_subscription/validators"
	"github.com/gin-gonic/gin"
)

func New(cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	if len(cfg.AllowedHosts) > 0 {
		r.Use(middleware.DomainWhitelistMiddleware(cfg.AllowedHosts))
	}
	if len(cfg.CORSOrigins) > 0 {
		r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	}

	r.GET("/health_check", handlers.HealthCheck)
	r.POST("/subscriptions", validators.BindForm(handlers.Subscribe))

	return r
}
