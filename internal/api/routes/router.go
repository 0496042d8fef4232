package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/danuartha/notaris-go/internal/api/handlers"
	"github.com/danuartha/notaris-go/internal/api/middleware"
	"github.com/danuartha/notaris-go/internal/application"
	"github.com/danuartha/notaris-go/internal/config/db"
	"github.com/danuartha/notaris-go/internal/cron"
	"github.com/danuartha/notaris-go/internal/repository"
)

func RegisterRoutes(r *gin.Engine) {
	// init
	reposInstance := repository.NewRepositories(db.DB)
	servicesInstance := application.NewServices(reposInstance)
	handlersInstance := handlers.New(servicesInstance, reposInstance, r)
	authMiddleware := middleware.NewAuth(reposInstance)

	// Start background tasks
	cron.StartCleanupTask(servicesInstance.Audit)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// setup
	r.POST("/register", handlersInstance.User.Register)
	r.POST("/login", handlersInstance.User.Login)
	r.POST("/logout", handlersInstance.User.Logout)

	// The upgrade request authenticates via query token or cookie, not the
	// Authorization header.
	r.GET("/ws/activities/:id/track", handlersInstance.WS.WatchActivityTrack)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", handlersInstance.User.AuthStatus)
		auth.GET("/profile", handlersInstance.User.AuthStatus)

		users := auth.Group("/users")
		{
			users.GET("", authMiddleware.Admin(), handlersInstance.User.GetUsers)
			users.GET("/clients", authMiddleware.NotaryOrAdmin(), handlersInstance.User.SearchClients)
			users.GET("/:id", handlersInstance.User.GetUserByID)
			users.PUT("/:id", authMiddleware.UserOrAdmin(), handlersInstance.User.UpdateUser)
			users.DELETE("/:id", authMiddleware.Admin(), handlersInstance.User.DeleteUser)
		}

		deeds := auth.Group("/deeds")
		{
			deeds.GET("", handlersInstance.Deed.ListDeeds)
			deeds.GET("/:id", handlersInstance.Deed.GetDeed)
			deeds.POST("", authMiddleware.Admin(), handlersInstance.Deed.CreateDeed)
			deeds.PUT("/:id", authMiddleware.Admin(), handlersInstance.Deed.UpdateDeed)
			deeds.DELETE("/:id", authMiddleware.Admin(), handlersInstance.Deed.DeleteDeed)
		}

		activities := auth.Group("/activities")
		{
			activities.GET("", handlersInstance.Activity.ListActivities)
			activities.GET("/:id", handlersInstance.Activity.GetActivity)
			activities.POST("", authMiddleware.NotaryOrAdmin(), handlersInstance.Activity.CreateActivity)
			activities.PUT("/:id", authMiddleware.NotaryOrAdmin(), handlersInstance.Activity.UpdateActivity)
			activities.DELETE("/:id", authMiddleware.NotaryOrAdmin(), handlersInstance.Activity.DeleteActivity)

			activities.POST("/:id/clients", authMiddleware.NotaryOrAdmin(), handlersInstance.Activity.AddParty)
			activities.DELETE("/:id/clients/:user_id", authMiddleware.NotaryOrAdmin(), handlersInstance.Activity.RemoveParty)
			activities.POST("/:id/respond", authMiddleware.Client(), handlersInstance.Activity.Respond)
			activities.POST("/:id/steps/:step/done", authMiddleware.NotaryOrAdmin(), handlersInstance.Activity.MarkStepDone)

			activities.GET("/:id/requirements", handlersInstance.Requirement.ListForActivity)

			activities.PUT("/:id/draft", authMiddleware.NotaryOrAdmin(), handlersInstance.Draft.SaveDraft)
			activities.POST("/:id/draft/approve", authMiddleware.Client(), handlersInstance.Draft.Approve)
			activities.POST("/:id/draft/reject", authMiddleware.Client(), handlersInstance.Draft.Reject)
			activities.POST("/:id/draft/file", handlersInstance.Draft.UploadFile)
			activities.POST("/:id/draft/render", authMiddleware.NotaryOrAdmin(), handlersInstance.Draft.Render)
		}

		schedules := auth.Group("/schedules")
		{
			schedules.POST("", authMiddleware.NotaryOrAdmin(), handlersInstance.Schedule.SaveSchedule)
			schedules.DELETE("/:id", authMiddleware.NotaryOrAdmin(), handlersInstance.Schedule.DeleteSchedule)
		}

		requirements := auth.Group("/requirements")
		{
			requirements.POST("", authMiddleware.NotaryOrAdmin(), handlersInstance.Requirement.CreateExtra)
			requirements.DELETE("/:id", authMiddleware.NotaryOrAdmin(), handlersInstance.Requirement.DeleteRequirement)
			requirements.POST("/:id/value", handlersInstance.Requirement.SubmitValue)
			requirements.POST("/:id/file", handlersInstance.Requirement.SubmitFile)
		}
		auth.POST("/requirement-values/:id/review", authMiddleware.NotaryOrAdmin(), handlersInstance.Requirement.ReviewValue)

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", authMiddleware.Admin(), handlersInstance.Audit.GetAuditLogs)
		}
	}
}
