package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/qwarnma600-sudo/ecommerces/internal/handlers"
	"github.com/qwarnma600-sudo/ecommerces/internal/middleware"
)

// SetupRouter wires every route the storefront calls. Paths match the
// original API so the client needs no changes.
func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	// Only the configured storefront origins may talk to us.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     h.Cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Uploaded product images are served straight from disk.
	router.Static("/images", h.Cfg.UploadDir)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ecommerces API")
	})

	// --- Public Routes ---
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)
	router.POST("/addproduct", h.AddProduct)
	router.GET("/allproducts", h.AllProducts)
	router.POST("/upload", h.UploadImage)

	// --- Protected Routes (Login Required) ---
	// Cart and order operations act on the verified token's subject.
	authed := router.Group("/")
	authed.Use(middleware.AuthRequired(h.Auth))
	{
		authed.POST("/addtocart", h.AddToCart)
		authed.POST("/removefromcart", h.RemoveFromCart)
		authed.POST("/getcart", h.GetCart)
		authed.POST("/placeorder", h.PlaceOrder)
	}

	return router
}
