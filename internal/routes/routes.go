package routes

import (
	"time"

	"github.com/gainablefr/gainable-backend/internal/config"
	"github.com/gainablefr/gainable-backend/internal/handlers"
	"github.com/gainablefr/gainable-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	expertHandler *handlers.ExpertHandler,
	leadHandler *handlers.LeadHandler,
	dashboardHandler *handlers.DashboardHandler,
	articleHandler *handlers.ArticleHandler,
	lookupHandler *handlers.LookupHandler,
	uploadHandler *handlers.UploadHandler,
	billingHandler *handlers.BillingHandler,
	adminHandler *handlers.AdminHandler,
	legalHandler *handlers.LegalHandler,
) {
	// Stripe webhooks are registered before the rate limiter: retries from
	// Stripe must never be throttled.
	app.Post("/api/stripe/webhook", billingHandler.Webhook)

	// Uploaded images are served straight off disk.
	app.Static(cfg.UploadBaseURL, cfg.UploadDir)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Legal pages
	api.Get("/legal/mentions-legales", legalHandler.MentionsLegales)
	api.Get("/legal/cgu", legalHandler.CGU)
	api.Get("/legal/confidentialite", legalHandler.PrivacyPolicy)

	// Public directory. The static /experts/search segment must be registered
	// before the :slug route.
	api.Get("/experts/search", expertHandler.Search)
	api.Get("/experts/:slug", expertHandler.Profile)
	api.Get("/experts/:slug/articles/:articleSlug", expertHandler.Article)

	// Public lead submission and signup-form lookups
	api.Post("/leads", leadHandler.Create)
	api.Get("/siret", lookupHandler.Siret)
	api.Get("/geocode", lookupHandler.Geocode)

	// Billing checkout (public: runs before the expert has a session)
	api.Post("/stripe/checkout", billingHandler.Checkout)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required) - apply middleware to individual routes
	// so the public routes above are not affected
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)
	api.Post("/upload", middleware.JWTProtected(cfg), uploadHandler.Upload)

	// Expert dashboard (protected)
	dashboard := api.Group("/dashboard", middleware.JWTProtected(cfg))
	dashboard.Get("/profile", dashboardHandler.GetProfile)
	dashboard.Put("/profile", dashboardHandler.UpdateProfile)
	dashboard.Get("/leads", dashboardHandler.Leads)
	dashboard.Get("/articles", articleHandler.List)
	dashboard.Post("/articles", articleHandler.Create)
	dashboard.Get("/articles/:id", articleHandler.Get)
	dashboard.Put("/articles/:id", articleHandler.Update)
	dashboard.Delete("/articles/:id", articleHandler.Delete)

	// Back office (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/experts", adminHandler.Experts)
	admin.Put("/experts/:id/status", adminHandler.UpdateExpertStatus)
	admin.Get("/leads", adminHandler.Leads)
}
