package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nextstep_backend/internals/features/directories/certifications/controller"
)

func CertificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCertificationController(db)

	certifications := api.Group("/certifications")
	certifications.Get("/", ctrl.ListCertifications)
	certifications.Get("/:id", ctrl.GetCertification)
}
