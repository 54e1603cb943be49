package middleware

import (
	"crypto/subtle"

	"kridavista-backend/config"
	apimodels "kridavista-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

// AdminRequired gates the dashboard routes on the shared admin secret,
// passed as a plain "password" query parameter. This is the only access
// control in the system.
func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		password := ctx.Query("password")
		secret := config.Conf.Admin.Password
		if password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(secret)) != 1 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("Unauthorized"))
		}
		return ctx.Next()
	}
}
