package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nextstep_backend/internals/features/users/user/controller"
	authMiddleware "nextstep_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserProfileController(db)

	user := api.Group("/user", authMiddleware.AuthMiddleware())
	user.Get("/profile", ctrl.GetProfile)
	user.Put("/profile", ctrl.UpdateProfile)
}
