package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/workbridge/jobboard-backend/internal/config"
	"github.com/workbridge/jobboard-backend/internal/handlers"
	"github.com/workbridge/jobboard-backend/internal/middleware"
	"github.com/workbridge/jobboard-backend/internal/models"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.ApplicationHandler,
	adminHandler *handlers.AdminHandler,
	submissionHandler *handlers.SubmissionHandler,
	blogHandler *handlers.BlogHandler,
	notificationHandler *handlers.NotificationHandler,
	realtimeHandler *handlers.RealtimeHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth: public, with a stricter limit of 10 req/min per IP
	auth := api.Group("")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register/jobseeker", authHandler.RegisterJobSeeker)
	auth.Post("/register/employer", authHandler.RegisterEmployer)
	auth.Post("/register/admin", authHandler.RegisterAdmin)
	auth.Post("/login", authHandler.Login)
	auth.Post("/admin/login", authHandler.AdminLogin)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Jobs: public browse, employer-gated management
	api.Get("/jobs", jobHandler.List)
	api.Get("/jobs/mine", middleware.JWTProtected(cfg),
		middleware.RoleRequired(models.UserTypeEmployer), jobHandler.ListOwn)
	api.Get("/jobs/:id", jobHandler.Get)
	api.Post("/jobs", middleware.JWTProtected(cfg),
		middleware.RoleRequired(models.UserTypeEmployer), jobHandler.Create)
	api.Put("/jobs/:id", middleware.JWTProtected(cfg),
		middleware.RoleRequired(models.UserTypeEmployer), jobHandler.Update)
	api.Delete("/jobs/:id", middleware.JWTProtected(cfg),
		middleware.RoleRequired(models.UserTypeEmployer), jobHandler.Delete)

	// Applications
	api.Post("/jobs/:id/apply", middleware.JWTProtected(cfg),
		middleware.RoleRequired(models.UserTypeJobSeeker), applicationHandler.Apply)
	api.Get("/jobs/:id/applications", middleware.JWTProtected(cfg),
		middleware.RoleRequired(models.UserTypeEmployer), applicationHandler.ListForJob)
	api.Get("/applications", middleware.JWTProtected(cfg),
		middleware.RoleRequired(models.UserTypeJobSeeker), applicationHandler.ListOwn)
	api.Put("/applications/:id/status", middleware.JWTProtected(cfg),
		middleware.RoleRequired(models.UserTypeEmployer), applicationHandler.UpdateStatus)

	// Public submission forms
	api.Post("/vacancies", submissionHandler.CreateVacancy)
	api.Post("/inquiries", submissionHandler.CreateInquiry)

	// Blog: public reads, authenticated writes
	api.Get("/blog", blogHandler.List)
	api.Get("/blog/:id", blogHandler.Get)
	api.Post("/blog", middleware.JWTProtected(cfg), blogHandler.Create)
	api.Put("/blog/:id", middleware.JWTProtected(cfg), blogHandler.Update)
	api.Delete("/blog/:id", middleware.JWTProtected(cfg), blogHandler.Delete)

	// Notifications
	api.Get("/notifications", middleware.JWTProtected(cfg), notificationHandler.List)
	api.Put("/notifications/read-all", middleware.JWTProtected(cfg), notificationHandler.MarkAllRead)
	api.Put("/notifications/:id/read", middleware.JWTProtected(cfg), notificationHandler.MarkRead)

	// Realtime polling
	api.Get("/realtime/jobs", realtimeHandler.Jobs)
	api.Get("/realtime/notifications", middleware.JWTProtected(cfg), realtimeHandler.Notifications)

	// Admin panel
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired())
	admin.Get("/users", adminHandler.ListUsers)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Post("/invitations", adminHandler.IssueInvitation)
	admin.Get("/vacancies", adminHandler.ListVacancies)
	admin.Put("/vacancies/:id/status", adminHandler.UpdateVacancyStatus)
	admin.Get("/inquiries", adminHandler.ListInquiries)
	admin.Put("/inquiries/:id/status", adminHandler.UpdateInquiryStatus)
}
