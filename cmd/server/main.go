package main

import (
	"log"
	"time"

	"law_office_app_go/config"
	"law_office_app_go/db"
	"law_office_app_go/handlers"
	"law_office_app_go/middleware"
	"law_office_app_go/models"
	"law_office_app_go/services"
	"law_office_app_go/services/jobs"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Client{},
		&models.Case{},
		&models.CaseExpense{},
		&models.CaseDocument{},
		&models.CaseEvent{},
		&models.CaseMilestone{},
		&models.CaseCommunication{},
		&models.CalendarEvent{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize storage and the notification port
	services.InitializeStorage(cfg)
	notifier := services.NewStoreNotifier(db.DB)
	handlers.Notify = notifier
	handlers.Notifications = notifier

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")

	// Public routes (no authentication required)
	e.POST("/register", handlers.RegisterPostHandler)
	e.POST("/login", handlers.LoginPostHandler)

	// Protected routes
	protected := e.Group("")
	protected.Use(middleware.RequireAuth())
	{
		protected.POST("/logout", handlers.LogoutHandler)
		protected.GET("/api/me", handlers.GetCurrentUserHandler)

		// Clients
		protected.GET("/api/clients", handlers.GetClientsHandler)
		protected.GET("/api/clients/:id", handlers.GetClientHandler)
		protected.POST("/clients", handlers.CreateClientHandler)
		protected.POST("/clients/:id", handlers.UpdateClientHandler)
		protected.DELETE("/api/clients/:id", handlers.DeleteClientHandler)

		// Cases
		protected.GET("/api/cases", handlers.GetCasesHandler)
		protected.GET("/api/cases/:id", handlers.GetCaseDetailHandler)
		protected.POST("/cases", handlers.CreateCaseHandler)
		protected.POST("/cases/:id", handlers.UpdateCaseHandler)
		protected.DELETE("/api/cases/:id", handlers.DeleteCaseHandler)

		// Case sub-records
		protected.GET("/api/cases/:id/expenses", handlers.GetCaseExpensesHandler)
		protected.POST("/cases/:id/expenses", handlers.CreateCaseExpenseHandler)
		protected.DELETE("/api/cases/:id/expenses/:eid", handlers.DeleteCaseExpenseHandler)

		protected.GET("/api/cases/:id/documents", handlers.GetCaseDocumentsHandler)
		protected.POST("/cases/:id/documents", handlers.CreateCaseDocumentHandler)
		protected.DELETE("/api/cases/:id/documents/:did", handlers.DeleteCaseDocumentHandler)

		protected.GET("/api/cases/:id/events", handlers.GetCaseEventsHandler)
		protected.POST("/cases/:id/events", handlers.CreateCaseEventHandler)
		protected.DELETE("/api/cases/:id/events/:eid", handlers.DeleteCaseEventHandler)

		protected.GET("/api/cases/:id/milestones", handlers.GetCaseMilestonesHandler)
		protected.POST("/cases/:id/milestones", handlers.CreateCaseMilestoneHandler)
		protected.DELETE("/api/cases/:id/milestones/:mid", handlers.DeleteCaseMilestoneHandler)

		protected.GET("/api/cases/:id/communications", handlers.GetCaseCommunicationsHandler)
		protected.POST("/cases/:id/communications", handlers.CreateCaseCommunicationHandler)
		protected.DELETE("/api/cases/:id/communications/:cid", handlers.DeleteCaseCommunicationHandler)

		// Calendar events
		protected.GET("/api/events", handlers.GetEventsHandler)
		protected.GET("/api/events/:id", handlers.GetEventHandler)
		protected.POST("/events", handlers.CreateEventHandler)
		protected.POST("/events/:id", handlers.UpdateEventHandler)
		protected.DELETE("/api/events/:id", handlers.DeleteEventHandler)

		// Receipts and reports
		protected.POST("/receipts/pdf", handlers.GenerateReceiptHandler)
		protected.GET("/reports/cases.xlsx", handlers.ExportCasesHandler)
		protected.GET("/reports/cases/:id/expenses.xlsx", handlers.ExportCaseExpensesHandler)

		// Notifications
		protected.GET("/api/notifications", handlers.GetNotificationsHandler)
		protected.POST("/api/notifications/:id/read", handlers.MarkNotificationReadHandler)
		protected.POST("/api/notifications/read-all", handlers.MarkAllNotificationsReadHandler)
	}

	// Background jobs: session cleanup hourly, event reminders every minute
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := services.CleanupExpiredSessions(db.DB); err != nil {
				log.Printf("Error cleaning up expired sessions: %v", err)
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			if err := jobs.SendDueReminders(db.DB, cfg); err != nil {
				log.Printf("Error sending event reminders: %v", err)
			}
		}
	}()

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
