package handlers

import (
	"pygextintores/internal/auth"
	applog "pygextintores/internal/log"

	"github.com/gofiber/fiber/v2"
)

func RequireAdmin(authSvc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		u, err := authSvc.CurrentUser(sid)
		if err != nil || !u.IsAdmin() {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Acceso denegado"})
		}
		c.Locals("user", u)
		return c.Next()
	}
}
