package route

import (
	"time"

	"github.com/gofiber/fiber/v2"

	helper "nextstep_backend/internals/helpers"
)

var startedAt = time.Now()

// BaseRoutes registers the unversioned service endpoints.
func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.Success(c, "NextStep API is running", fiber.Map{
			"service": "nextstep-backend",
			"uptime":  time.Since(startedAt).Round(time.Second).String(),
		})
	})
}
