package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assessmentRoute "nextstep_backend/internals/features/assessments/quiz/route"
	chatRoute "nextstep_backend/internals/features/chat/route"
	certificationRoute "nextstep_backend/internals/features/directories/certifications/route"
	collegeRoute "nextstep_backend/internals/features/directories/colleges/route"
	authRoute "nextstep_backend/internals/features/users/auth/route"
	userRoute "nextstep_backend/internals/features/users/user/route"
)

// SetupRoutes mounts every feature under /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)
	userRoute.UserRoutes(api, db)
	assessmentRoute.AssessmentRoutes(api, db)
	chatRoute.ChatRoutes(api, db)
	collegeRoute.CollegeRoutes(api, db)
	certificationRoute.CertificationRoutes(api, db)
}
