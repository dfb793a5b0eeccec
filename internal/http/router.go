package api

import (
	"log"
	stdhttp "net/http"

	"laganbus/internal/config"
	h "laganbus/internal/http/handlers"
	"laganbus/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires middleware and routes around the shared API handlers.
func NewRouter(cfg config.Config, api *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(cfg.Metrics.Path), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = []string{"Content-Type", "Accept", "Origin", "X-Request-ID"}
	r.Use(cors.New(corsCfg))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	grp := r.Group("/api")
	{
		grp.GET("/health", api.Health)
		grp.GET("/catalog", api.GetCatalog)

		bookings := grp.Group("/bookings")
		bookings.POST("", api.CreateBooking)
		bookings.POST("/quote", api.QuoteFare)
		bookings.GET("/lookup", api.LookupBooking)
		bookings.GET("/ticket", api.GetTicketPDF)

		grp.POST("/assistant", api.AskAssistant)
	}

	return r
}
