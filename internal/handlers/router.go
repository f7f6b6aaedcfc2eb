package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/school-hub/school-service/internal/models"
	"github.com/school-hub/school-service/internal/services"
	"github.com/school-hub/school-service/internal/utils"
)

type HandlerManager struct {
	studentHandler      *StudentHandler
	eventHandler        *EventHandler
	sportHandler        *SportHandler
	achievementHandler  *AchievementHandler
	announcementHandler *AnnouncementHandler
	notificationHandler *NotificationHandler
	timetableHandler    *TimetableHandler
	authHandler         *AuthHandler
	reportHandler       *ReportHandler
	authMiddleware      *AuthMiddleware
	uploads             UploadConfig
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
	uploads UploadConfig,
) *HandlerManager {
	return &HandlerManager{
		studentHandler:      NewStudentHandler(serviceManager.Student(), logger),
		eventHandler:        NewEventHandler(serviceManager.Event(), uploads, logger),
		sportHandler:        NewSportHandler(serviceManager.Sport(), logger),
		achievementHandler:  NewAchievementHandler(serviceManager.Achievement(), uploads, logger),
		announcementHandler: NewAnnouncementHandler(serviceManager.Announcement(), logger),
		notificationHandler: NewNotificationHandler(serviceManager.Notification(), logger),
		timetableHandler:    NewTimetableHandler(serviceManager.Timetable(), logger),
		authHandler:         NewAuthHandler(serviceManager.Auth(), logger),
		reportHandler:       NewReportHandler(serviceManager.Export(), logger),
		authMiddleware:      NewAuthMiddleware(serviceManager.Auth()),
		uploads:             uploads,
	}
}

// SetupRoutes sets up all API routes. Reads are public; mutations,
// stats and exports require an admin bearer token.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	authn := hm.authMiddleware.Authenticate()
	adminOnly := hm.authMiddleware.RequireRole(models.RoleAdmin)

	// Uploaded images are served straight from disk.
	router.Static("/uploads", hm.uploads.Dir)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", hm.authHandler.Signup)
			auth.POST("/signin", hm.authHandler.Signin)
			auth.GET("/me", authn, hm.authHandler.Me)
			auth.GET("/users", authn, adminOnly, hm.authHandler.ListUsers)
			auth.PUT("/:userId/role", authn, adminOnly, hm.authHandler.UpdateUserRole)
		}

		students := api.Group("/students")
		{
			students.GET("", hm.studentHandler.ListStudents)
			students.GET("/:id", hm.studentHandler.GetStudent)
			students.POST("/create-student", authn, adminOnly, hm.studentHandler.CreateStudent)
			students.PUT("/update-student/:id", authn, adminOnly, hm.studentHandler.UpdateStudent)
			students.DELETE("/delete-student/:id", authn, adminOnly, hm.studentHandler.DeleteStudent)
			students.GET("/stats/overview", authn, adminOnly, hm.studentHandler.GetStudentStats)
		}

		events := api.Group("/events")
		{
			events.GET("", hm.eventHandler.ListEvents)
			events.GET("/:id", hm.eventHandler.GetEvent)
			events.GET("/status/:status", hm.eventHandler.ListEventsByStatus)
			events.GET("/category/:category", hm.eventHandler.ListEventsByCategory)
			events.POST("/create-event", authn, adminOnly, hm.eventHandler.CreateEvent)
			events.PUT("/update-event/:id", authn, adminOnly, hm.eventHandler.UpdateEvent)
			events.DELETE("/delete-event/:id", authn, adminOnly, hm.eventHandler.DeleteEvent)
			events.GET("/stats/overview", authn, adminOnly, hm.eventHandler.GetEventStats)
		}

		sports := api.Group("/sports")
		{
			sports.GET("", hm.sportHandler.ListSports)
			sports.GET("/:id", hm.sportHandler.GetSport)
			sports.GET("/status/:status", hm.sportHandler.ListSportsByStatus)
			sports.GET("/category/:category", hm.sportHandler.ListSportsByCategory)
			sports.POST("/create-sport", authn, adminOnly, hm.sportHandler.CreateSport)
			sports.PUT("/update-sport/:id", authn, adminOnly, hm.sportHandler.UpdateSport)
			sports.DELETE("/delete-sport/:id", authn, adminOnly, hm.sportHandler.DeleteSport)
			sports.GET("/stats/overview", authn, adminOnly, hm.sportHandler.GetSportStats)
		}

		achievements := api.Group("/achievements")
		{
			achievements.GET("", hm.achievementHandler.ListAchievements)
			achievements.GET("/:id", hm.achievementHandler.GetAchievement)
			achievements.GET("/category/:category", hm.achievementHandler.ListAchievementsByCategory)
			achievements.POST("/create-achievement", authn, adminOnly, hm.achievementHandler.CreateAchievement)
			achievements.PUT("/update-achievement/:id", authn, adminOnly, hm.achievementHandler.UpdateAchievement)
			achievements.DELETE("/delete-achievement/:id", authn, adminOnly, hm.achievementHandler.DeleteAchievement)
			achievements.GET("/stats/overview", authn, adminOnly, hm.achievementHandler.GetAchievementStats)
		}

		announcements := api.Group("/announcements")
		{
			announcements.GET("", hm.announcementHandler.ListAnnouncements)
			announcements.GET("/active", authn, hm.announcementHandler.GetActiveAnnouncements)
			announcements.GET("/:id", hm.announcementHandler.GetAnnouncement)
			announcements.POST("/create-announcement", authn, adminOnly, hm.announcementHandler.CreateAnnouncement)
			announcements.PUT("/update-announcement/:id", authn, adminOnly, hm.announcementHandler.UpdateAnnouncement)
			announcements.DELETE("/delete-announcement/:id", authn, adminOnly, hm.announcementHandler.DeleteAnnouncement)
			announcements.GET("/stats/overview", authn, adminOnly, hm.announcementHandler.GetAnnouncementStats)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", hm.notificationHandler.ListNotifications)
			notifications.GET("/active", authn, hm.notificationHandler.GetActiveNotifications)
			notifications.GET("/:id", hm.notificationHandler.GetNotification)
			notifications.POST("/:id/mark-read", authn, hm.notificationHandler.MarkNotificationRead)
			notifications.POST("/create-notification", authn, adminOnly, hm.notificationHandler.CreateNotification)
			notifications.PUT("/update-notification/:id", authn, adminOnly, hm.notificationHandler.UpdateNotification)
			notifications.DELETE("/delete-notification/:id", authn, adminOnly, hm.notificationHandler.DeleteNotification)
			notifications.GET("/stats/overview", authn, adminOnly, hm.notificationHandler.GetNotificationStats)
		}

		timetable := api.Group("/timetable")
		{
			timetable.GET("/grades", hm.timetableHandler.ListGrades)
			timetable.GET("/grade/:grade", hm.timetableHandler.GetGradeTimetable)
			timetable.POST("/create-grade", authn, adminOnly, hm.timetableHandler.CreateGrade)
			timetable.POST("/update-slot", authn, adminOnly, hm.timetableHandler.UpdateSlot)
			timetable.POST("/clear-slot", authn, adminOnly, hm.timetableHandler.ClearSlot)
		}

		reports := api.Group("/reports")
		reports.Use(authn, adminOnly)
		{
			reports.GET("/students.xlsx", hm.reportHandler.ExportStudents)
			reports.GET("/events.xlsx", hm.reportHandler.ExportEvents)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "school-service",
		})
	})
}
