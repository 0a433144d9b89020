package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"nextstep_backend/internals/features/chat/dto"
	"nextstep_backend/internals/features/chat/service"
	helper "nextstep_backend/internals/helpers"
	authMiddleware "nextstep_backend/internals/middlewares/auth"
)

var validate = validator.New()

type ChatController struct {
	Service *service.ChatService
}

func NewChatController(svc *service.ChatService) *ChatController {
	return &ChatController{Service: svc}
}

// Chat handles POST /api/chat
func (ctrl *ChatController) Chat(c *fiber.Ctx) error {
	var body dto.ChatRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	reply, err := ctrl.Service.Reply(c.Context(), authMiddleware.UserID(c), &body)
	if err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			return helper.Error(c, fiber.StatusServiceUnavailable, "Chat is not available right now")
		}
		log.Printf("[ERROR] chat relay: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Failed to get a response, please try again")
	}

	return helper.Success(c, "Reply generated successfully", dto.ChatResponse{Reply: reply})
}
