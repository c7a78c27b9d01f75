package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "marquesa/internal/config"
	h "marquesa/internal/http/handlers"
	"marquesa/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"message": "ruta no encontrada",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	secret := []byte(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Products (storefront)
		products := api.Group("/products")
		products.GET("/featured", h.ListFeaturedProducts)
		products.GET("/:id", h.GetProduct)

		// Reviews
		reviews := api.Group("/reviews")
		reviews.GET("/product/:id", h.ListProductReviews)
		reviews.POST("", h.CreateReview)

		adminReviews := reviews.Group("", middleware.RequireAuth(secret), middleware.RequireAdmin())
		adminReviews.GET("", h.ListReviews)
		adminReviews.PUT("/:id/reply", h.ReplyReview)
		adminReviews.PUT("/:id/moderate", h.ModerateReview)
		adminReviews.DELETE("/:id", h.DeleteReview)

		// Clients & ruleta
		clients := api.Group("/clients")
		clients.GET("", middleware.RequireAuth(secret), middleware.RequireAdmin(), h.ListClients)
		clients.GET("/total", middleware.RequireAuth(secret), middleware.RequireAdmin(), h.ClientsTotal)
		ruleta := clients.Group("/ruleta", middleware.RequireAuth(secret))
		ruleta.GET("/status", h.RuletaStatus)
		ruleta.PUT("/toggle", h.ToggleRuleta)

		// Sales & reports (admin)
		sales := api.Group("/sales", middleware.RequireAuth(secret), middleware.RequireAdmin())
		sales.GET("", h.ListSales)
		sales.GET("/total", h.SalesTotal)
		sales.GET("/report", h.GetSalesReportPDF)

		// Email verification
		verification := api.Group("/emailVerification")
		verification.POST("/request", h.RequestVerificationCode)
		verification.POST("/verify", h.VerifyCode)
		verification.GET("/status", h.VerificationStatus)

		// Uploads (admin)
		uploads := api.Group("/upload", middleware.RequireAuth(secret), middleware.RequireAdmin())
		uploads.POST("/image", h.UploadImage)
		uploads.POST("/images", h.UploadImages)
		uploads.POST("/media", h.UploadMedia)
	}

	return r
}
