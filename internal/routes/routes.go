package routes

import (
	"github.com/01moynul/autoshop-golang/internal/handlers"
	"github.com/01moynul/autoshop-golang/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every endpoint onto a gin engine.
func SetupRouter(h *handlers.Handlers, corsOrigins []string) *gin.Engine {
	router := gin.Default()

	// --- APPLY THE CORS GUARD ---
	router.Use(middleware.CORSMiddleware(corsOrigins))

	// Uploaded images are served as plain static files.
	router.Static("/uploads", h.UploadDir)

	v1 := router.Group("/v1")
	{
		v1.GET("/healthcheck", h.HealthCheck)

		// --- Promo Routes ---
		v1.GET("/promos", h.GetPromos)
		v1.POST("/promos", h.CreatePromo)

		// --- Product Routes ---
		v1.GET("/products", h.GetProducts)
		v1.GET("/products/:id", h.GetProduct)
		v1.POST("/products", h.CreateProduct)

		// --- Article & Comment Routes ---
		v1.GET("/articles", h.GetArticles)
		v1.GET("/articles/:id", h.GetArticle)
		v1.POST("/articles", h.CreateArticle)
		v1.POST("/articles/:id/like", h.LikeArticle)
		v1.GET("/articles/:id/comments", h.GetArticleComments)
		v1.POST("/comments", h.CreateComment)

		// --- Contact & Booking Routes ---
		v1.POST("/contact-messages", h.CreateContactMessage)
		v1.GET("/service-bookings", h.GetServiceBookings)
		v1.POST("/service-bookings", h.CreateServiceBooking)

		// --- Admin Login (Public) ---
		v1.POST("/admin/login", h.AdminLogin)

		// --- Admin Routes (Token Required) ---
		admin := v1.Group("/admin")
		admin.Use(middleware.AdminMiddleware(h.Tokens))
		{
			admin.GET("/comments/pending", h.GetPendingComments)
			admin.PATCH("/comments/:id/approve", h.ApproveComment)
			admin.GET("/contact-messages", h.GetContactMessages)
			admin.PATCH("/contact-messages/:id/read", h.MarkContactMessageRead)
			admin.PATCH("/service-bookings/:id/status", h.UpdateServiceBookingStatus)
			admin.POST("/upload", h.UploadFile)
		}
	}

	return router
}
