// Package api is the storefront's JSON surface. Handlers read the catalog
// and the session managers and forward intents back into them; nothing here
// keeps its own copy of state.
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/assistant"
	"github.com/somascents/storefront/internal/storefront/checkout"
	"github.com/somascents/storefront/internal/storefront/model"
	"github.com/somascents/storefront/internal/storefront/notify"
	"github.com/somascents/storefront/internal/storefront/session"
	logx "github.com/somascents/storefront/pkg/logger"
)

// ================ Config ================
type Config struct {
	Addr         string   `envconfig:"HTTP_ADDR" default:":8080"`
	AllowOrigins []string `envconfig:"HTTP_ALLOW_ORIGINS" default:"http://localhost:3000"`
}

// Deps are the components the router serves.
type Deps struct {
	Session  *session.Session
	Checkout *checkout.Service
	// Notifier backs the notification boundary route.
	Notifier model.Notifier
	// Assistant is optional; its routes are not mounted when nil.
	Assistant *assistant.Executor
}

type handler struct {
	Deps
}

// NewRouter builds the gin engine with every storefront route mounted.
func NewRouter(cfg Config, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := &handler{Deps: deps}

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	{
		// Catalog
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.GET("/categories", h.listCategories)
		api.GET("/suggestions", h.suggestions)
		api.GET("/best-sellers", h.bestSellers)

		// Cart
		api.GET("/cart", h.getCart)
		api.POST("/cart", h.addToCart)
		api.PUT("/cart/:productId", h.updateCart)
		api.DELETE("/cart/:productId", h.removeCartItem)
		api.POST("/cart/clear", h.clearCart)

		// Favorites
		api.GET("/favorites", h.getFavorites)
		api.POST("/favorites/:productId/toggle", h.toggleFavorite)

		// Toast
		api.GET("/toast", h.getToast)
		api.DELETE("/toast", h.hideToast)

		// Orders
		api.POST("/checkout", h.checkout)

		if deps.Assistant != nil {
			api.GET("/assistant/tools", h.assistantTools)
			api.POST("/assistant/execute", h.assistantExecute)
			api.GET("/assistant/conversations/:id", h.assistantHistory)
			api.DELETE("/assistant/conversations/:id", h.assistantClearHistory)
		}
	}
	r.POST(notify.Route, notify.Handler(deps.Notifier))

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logx.Debug().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// abort writes err as {"error": message} with its mapped status.
func abort(c *gin.Context, err error) {
	status := errx.StatusOf(err)
	if status >= http.StatusInternalServerError {
		logx.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": errx.MessageOf(err)})
}
