package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nextstep_backend/internals/features/assessments/quiz/controller"
)

// AssessmentRoutes mounts the assessment submit/history endpoints. They are
// deliberately not session-gated: the quiz flow is usable before sign-up and
// attributes anonymous submissions to the demo identity.
func AssessmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssessmentController(db)

	api.Post("/assessment", ctrl.SubmitAssessment)
	api.Get("/assessment", ctrl.GetAssessments)
	api.Get("/assessment/topics", ctrl.GetTopics)
}
