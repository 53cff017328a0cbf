package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sasanaku_backend/internals/configs"
	"sasanaku_backend/internals/middlewares"
	authMiddleware "sasanaku_backend/internals/middlewares/auth"
	details "sasanaku_backend/internals/route/details"
)

// SetupRoutes memasang seluruh route aplikasi.
// /api/public → tanpa auth (web publik + preview)
// /api/a      → admin (JWT + role check + rate limit tulis)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	public := app.Group("/api/public")
	details.HomepagePublicRoutes(public, db)

	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.IsAdmin(),
		middlewares.AdminWriteRateLimiter(),
	)
	details.HomepageAdminRoutes(admin, db)
}
