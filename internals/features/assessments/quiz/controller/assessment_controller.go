package controller

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nextstep_backend/internals/configs"
	"nextstep_backend/internals/constants"
	"nextstep_backend/internals/features/assessments/quiz/dto"
	"nextstep_backend/internals/features/assessments/quiz/service"
	helper "nextstep_backend/internals/helpers"
)

type AssessmentController struct {
	DB      *gorm.DB
	Service *service.AssessmentService
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{
		DB:      db,
		Service: service.NewAssessmentService(db),
	}
}

// SubmitAssessment handles POST /api/assessment
func (ctrl *AssessmentController) SubmitAssessment(c *fiber.Ctx) error {
	var body dto.SubmitAssessmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if _, ok := body.ValidateRequired(); !ok {
		return helper.Error(c, fiber.StatusBadRequest,
			"Missing required fields: topic, questions, userAnswers, score")
	}

	result, created, err := ctrl.Service.Submit(c.UserContext(), &body)
	if err != nil {
		log.Printf("[ERROR] save quiz data: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, persistenceMessage(err))
	}

	code := fiber.StatusOK
	if created {
		code = fiber.StatusCreated
	}
	return helper.SuccessWithCode(c, code, "Quiz data saved successfully", result)
}

// GetAssessments handles GET /api/assessment?userId=&topic=
func (ctrl *AssessmentController) GetAssessments(c *fiber.Ctx) error {
	userID := c.Query("userId")
	topic := c.Query("topic")

	rows, err := ctrl.Service.History(c.UserContext(), userID, topic)
	if err != nil {
		log.Printf("[ERROR] fetch quiz history: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, persistenceMessage(err))
	}

	items := make([]dto.HistoryItemDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ToHistoryItemDTO(r))
	}

	return helper.Success(c, "Quiz history fetched successfully", items)
}

// GetTopics handles GET /api/assessment/topics
func (ctrl *AssessmentController) GetTopics(c *fiber.Ctx) error {
	return helper.Success(c, "Quiz topics fetched successfully", constants.QuizTopics)
}

// internal detail leaks to the client only in development mode
func persistenceMessage(err error) string {
	msg := "Failed to process quiz data"
	if configs.IsDevelopment() {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	return msg
}
