package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/config"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/uikit-market/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Health       *handlers.HealthHandler
	Kit          *handlers.KitHandler
	Engagement   *handlers.EngagementHandler
	Comment      *handlers.CommentHandler
	Payment      *handlers.PaymentHandler
	Notification *handlers.NotificationHandler
	User         *handlers.UserHandler
}

func Setup(app *fiber.App, cfg *config.Config, stores *store.Stores, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/google", h.Auth.GoogleSignIn)
	auth.Post("/otp/request", h.Auth.RequestOtp)
	auth.Post("/otp/verify", h.Auth.VerifyOtp)
	auth.Post("/refresh", h.Auth.Refresh)

	// JWT applied per-route so the middleware never touches public paths.
	jwt := middleware.JWTProtected(cfg)
	api.Post("/auth/logout", jwt, h.Auth.Logout)
	api.Delete("/auth/account", jwt, h.Auth.DeleteAccount)

	// Catalog — browsing is public, authoring requires auth
	api.Get("/kits", h.Kit.List)
	api.Get("/kits/stats", h.Kit.Stats)
	api.Get("/kits/:id", h.Kit.Get)
	api.Get("/kits/:id/comments", h.Comment.ListForKit)
	api.Post("/kits", jwt, h.Kit.Create)
	api.Put("/kits/:id", jwt, h.Kit.Update)
	api.Delete("/kits/:id", jwt, h.Kit.Delete)

	// Engagement
	api.Post("/kits/:id/like", jwt, h.Engagement.ToggleLike)
	api.Post("/kits/:id/wishlist", jwt, h.Engagement.ToggleWishlist)
	api.Post("/kits/:id/comments", jwt, h.Comment.Add)
	api.Put("/comments/:id", jwt, h.Comment.Update)
	api.Delete("/comments/:id", jwt, h.Comment.Delete)

	// Profile
	api.Get("/me", jwt, h.User.Me)
	api.Get("/me/likes", jwt, h.Engagement.MyLikes)
	api.Get("/me/wishlist", jwt, h.Engagement.MyWishlist)
	api.Get("/me/payments", jwt, h.Payment.MyPayments)

	// Notifications
	api.Get("/notifications", jwt, h.Notification.List)
	api.Put("/notifications/read-all", jwt, h.Notification.MarkAllRead)
	api.Delete("/notifications/read", jwt, h.Notification.ClearRead)
	api.Put("/notifications/:id/read", jwt, h.Notification.MarkRead)
	api.Delete("/notifications/:id", jwt, h.Notification.Delete)

	// Payments
	api.Post("/payments", jwt, h.Payment.Record)

	// Admin panel — the operator token skips the JWT layer entirely, so it
	// must be checked before the token guard runs.
	admin := api.Group("/admin",
		middleware.AdminTokenBypass(cfg, jwt),
		middleware.AdminRequired(stores, cfg))
	admin.Get("/users", h.User.List)
	admin.Get("/users/stats", h.User.Stats)
	admin.Put("/users/status", h.User.SetStatusBulk)
	admin.Get("/users/:id", h.User.Get)
	admin.Put("/users/:id", h.User.Update)
	admin.Delete("/users/:id", h.User.Delete)
	admin.Put("/payments/:id/status", h.Payment.SetStatus)
	admin.Get("/payments/revenue", h.Payment.Revenue)
}
