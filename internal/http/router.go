package api

import (
	"log"
	stdhttp "net/http"
	"os"
	"strings"
	"time"

	"backend/internal/catalog"
	intconfig "backend/internal/config"
	"backend/internal/gateway"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, cat *catalog.Catalog) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware())

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

	var gw services.GatewayClient
	if !env.Gateway.DemoMode() {
		gw = gateway.NewRazorpayClient(env.Gateway)
	}
	bookingRepo := repositories.BookingRepository{}

	orderHandler := h.OrderHandler{
		Catalog:    cat,
		Gateway:    gw,
		Store:      bookingRepo,
		Creds:      env.Gateway,
		Production: env.IsProduction(),
	}
	paymentHandler := h.PaymentHandler{
		Creds: env.Gateway,
		Store: bookingRepo,
	}
	packageHandler := h.PackageHandler{Catalog: cat}
	authHandler := h.AuthHandler{JWTSecret: []byte(env.JWTSecret)}
	adminHandler := h.BookingAdminHandler{Repo: bookingRepo, Catalog: cat}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Catalog
		api.GET("/packages", packageHandler.List)
		api.GET("/packages/:id", packageHandler.Get)

		// Checkout
		api.POST("/create-order", orderHandler.Create)
		api.POST("/verify-payment", paymentHandler.Verify)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)

		// Staff-only booking records
		bookings := api.Group("/bookings")
		bookings.Use(middleware.RequireAuth([]byte(env.JWTSecret)), middleware.RequireRoles("owner", "admin", "staff"))
		bookings.GET("", adminHandler.List)
		bookings.GET("/:id", adminHandler.Get)
		bookings.GET("/:id/invoice", adminHandler.Invoice)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	origins := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		origins = origins[:0]
		for _, o := range strings.Split(env, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
