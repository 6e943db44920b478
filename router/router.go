package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dinehub/restaurant-backend/config"
	"github.com/dinehub/restaurant-backend/controllers"
	"github.com/dinehub/restaurant-backend/middlewares"
	"github.com/dinehub/restaurant-backend/storage"
)

func SetupRouter(db *gorm.DB, store storage.ImageStore, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	rateLimiter := middlewares.NewRateLimiter(
		cfg.RateLimit,
		time.Duration(cfg.RateWindowSeconds)*time.Second,
	)
	r.Use(rateLimiter.RateLimit())

	r.Use(middlewares.SecurityHeaders())
	var extraOrigins []string
	if cfg.AllowedOrigins != "" {
		extraOrigins = strings.Split(cfg.AllowedOrigins, ",")
	}
	r.Use(middlewares.CORSMiddleware(extraOrigins))
	r.Use(middlewares.LoggerMiddleware())

	// Uploaded images are publicly servable, but only image files.
	r.Use(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/images/") {
			p := strings.ToLower(c.Request.URL.Path)
			if !strings.HasSuffix(p, ".jpg") &&
				!strings.HasSuffix(p, ".jpeg") &&
				!strings.HasSuffix(p, ".png") &&
				!strings.HasSuffix(p, ".gif") &&
				!strings.HasSuffix(p, ".webp") {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}
		c.Next()
	})
	r.Static("/images", cfg.UploadDir)

	foodCtrl := controllers.NewFoodController(db)
	staffCtrl := controllers.NewStaffController(db)
	uploadCtrl := controllers.NewUploadController(store)
	reportCtrl := controllers.NewReportController(db)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Server is running..."})
	})
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// /api/menu is a historical alias of /api/foods; both revisions of
	// the client are served by the same handlers.
	for _, prefix := range []string{"/foods", "/menu"} {
		foods := api.Group(prefix)
		foods.GET("", foodCtrl.GetAllFoods)
		foods.POST("", foodCtrl.CreateFood)
		foods.GET("/:id", foodCtrl.GetFoodByID)
		foods.PUT("/:id", foodCtrl.UpdateFood)
		foods.DELETE("/:id", foodCtrl.DeleteFood)
	}

	staff := api.Group("/staff")
	staff.GET("", staffCtrl.GetAllStaff)
	staff.POST("", staffCtrl.CreateStaff)
	staff.GET("/:id", staffCtrl.GetStaffByID)
	staff.PUT("/:id", staffCtrl.UpdateStaff)
	staff.DELETE("/:id", staffCtrl.DeleteStaff)

	// Uploads carry a tighter shared cap on top of the per-IP window.
	api.POST("/upload", middlewares.NewStrictWriteLimiter(30), uploadCtrl.UploadImage)

	api.GET("/reports/export", reportCtrl.ExportData)

	return r
}
