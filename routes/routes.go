package routes

import (
	"net/http"
	"time"

	"github.com/681102815-lab/CondoCare-backend/configs"
	"github.com/681102815-lab/CondoCare-backend/controllers"
	"github.com/681102815-lab/CondoCare-backend/middlewares"
	"github.com/681102815-lab/CondoCare-backend/repository"
	"github.com/681102815-lab/CondoCare-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	// Repositories / Services / Controllers
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	reportService := services.NewReportService(reportRepo)

	authCtrl := controllers.NewAuthController(authService)
	reportCtrl := controllers.NewReportController(reportService)

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Auth (public)
	a := api.Group("/auth")
	a.POST("/login", authCtrl.Login)

	// Auth (ต้อง login)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.PUT("/change-password", authCtrl.ChangePassword)
		aAuth.PUT("/update-name", authCtrl.UpdateName)
	}

	// Auth (admin เท่านั้น)
	aAdmin := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		aAdmin.GET("/users", authCtrl.ListUsers)
		aAdmin.POST("/register", authCtrl.Register)
		aAdmin.DELETE("/users/:userId", authCtrl.DeleteUser)
	}

	// Reports (public: ดูรายการ + โหวต)
	rep := api.Group("/reports")
	rep.GET("", reportCtrl.List)
	rep.POST("/:id/like", reportCtrl.ToggleLike)
	rep.POST("/:id/dislike", reportCtrl.ToggleDislike)

	// Reports (ต้อง login)
	repAuth := rep.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		repAuth.POST("", reportCtrl.Create)
		repAuth.DELETE("/:id", reportCtrl.Delete)
		repAuth.PUT("/:id/status", reportCtrl.SetStatus)
		repAuth.PUT("/:id/feedback", reportCtrl.SetFeedback)
		repAuth.POST("/:id/comment", reportCtrl.AddComment)
	}
}
