package router

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gurveershienh/projectflow/internal/handlers"
	"github.com/gurveershienh/projectflow/internal/middleware"
	"gorm.io/gorm"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

func allowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if extra := os.Getenv("ALLOWED_ORIGINS"); extra != "" {
		for _, origin := range strings.Split(extra, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}

func NewRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	h := handlers.New(db)
	authenticated := middleware.AuthMiddleware(db)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.POST("/logout", authenticated, h.Logout)
			auth.GET("/me", authenticated, h.Me)
		}

		users := api.Group("/users", authenticated)
		{
			users.PATCH("/:user_id/email", h.ChangeEmail)
			users.PATCH("/:user_id/password", h.ChangePassword)
			users.DELETE("/:user_id", h.DeleteAccount)
		}

		projects := api.Group("/projects", authenticated)
		{
			projects.POST("", h.CreateProject)
			projects.GET("", h.ListProjects)
			projects.GET("/:project_id", h.GetProject)
			projects.PATCH("/:project_id", h.UpdateProject)
			projects.DELETE("/:project_id", h.DeleteProject)

			projects.GET("/:project_id/dashboard", h.GetDashboard)

			projects.POST("/:project_id/features", h.CreateFeature)
			projects.GET("/:project_id/features", h.ListFeatures)
		}

		features := api.Group("/features", authenticated)
		{
			features.GET("/:feature_id", h.GetFeature)
			features.PATCH("/:feature_id", h.UpdateFeature)
			features.DELETE("/:feature_id", h.DeleteFeature)

			features.POST("/:feature_id/tasks", h.CreateTask)
			features.GET("/:feature_id/tasks", h.ListTasks)
		}

		tasks := api.Group("/tasks", authenticated)
		{
			tasks.GET("/:task_id", h.GetTask)
			tasks.PATCH("/:task_id", h.UpdateTask)
			tasks.DELETE("/:task_id", h.DeleteTask)

			tasks.POST("/:task_id/notes", h.CreateNote)
			tasks.GET("/:task_id/notes", h.ListNotes)
		}

		notes := api.Group("/notes", authenticated)
		{
			notes.GET("/:note_id", h.GetNote)
			notes.PATCH("/:note_id", h.UpdateNote)
			notes.DELETE("/:note_id", h.DeleteNote)
		}
	}

	return r
}
