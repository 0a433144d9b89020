package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nextstep_backend/internals/features/directories/colleges/controller"
)

func CollegeRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCollegeController(db)

	colleges := api.Group("/colleges")
	colleges.Get("/", ctrl.ListColleges)
	colleges.Get("/:id", ctrl.GetCollege)
}
