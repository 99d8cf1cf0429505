package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/reelbase-dev/reelbase/internal/events"
	"github.com/reelbase-dev/reelbase/internal/handlers"
	"github.com/reelbase-dev/reelbase/web"
)

type Deps struct {
	Users          *handlers.UserHandler
	Categories     *handlers.CategoryHandler
	Banners        *handlers.BannerHandler
	Movies         *handlers.MovieHandler
	Hub            *events.Hub
	RequireAuth    gin.HandlerFunc
	AllowedOrigins []string
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
		api.GET("/events", deps.Hub.Handle)

		user := api.Group("/user")
		{
			user.POST("/register", deps.Users.Register)
			user.POST("/login", deps.Users.Login)
			user.GET("/users", deps.RequireAuth, deps.Users.List)
			user.GET("/:id", deps.RequireAuth, deps.Users.Get)
			user.PUT("/:id", deps.RequireAuth, deps.Users.Update)
			user.DELETE("/:id", deps.RequireAuth, deps.Users.Delete)
		}

		category := api.Group("/category")
		{
			category.GET("/", deps.Categories.List)
			category.POST("/", deps.RequireAuth, deps.Categories.Create)
		}

		banner := api.Group("/banner")
		{
			banner.GET("/", deps.Banners.List)
			banner.GET("/:id", deps.Banners.Get)
			banner.POST("/", deps.RequireAuth, deps.Banners.Create)
			banner.DELETE("/:id", deps.RequireAuth, deps.Banners.Delete)
		}

		movie := api.Group("/movie")
		{
			movie.GET("/", deps.Movies.List)
			movie.GET("/:id", deps.Movies.Get)
			movie.POST("/", deps.RequireAuth, deps.Movies.Create)
			movie.PUT("/:id", deps.RequireAuth, deps.Movies.Update)
			movie.DELETE("/:id", deps.RequireAuth, deps.Movies.Delete)
		}
	}

	// Embedded admin console.
	r.GET("/", serveAsset("index.html", "text/html; charset=utf-8"))
	r.GET("/app.js", serveAsset("app.js", "application/javascript"))
	r.GET("/styles.css", serveAsset("styles.css", "text/css"))

	return r
}

func serveAsset(name, contentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := web.Assets.ReadFile(name)

		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}

		c.Data(http.StatusOK, contentType, data)
	}
}
