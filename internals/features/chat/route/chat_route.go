package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nextstep_backend/internals/configs"
	"nextstep_backend/internals/features/chat/controller"
	"nextstep_backend/internals/features/chat/service"
	"nextstep_backend/internals/middlewares"
	authMiddleware "nextstep_backend/internals/middlewares/auth"
)

func ChatRoutes(api fiber.Router, db *gorm.DB) {
	svc := service.NewChatService(db, configs.OpenAIAPIKey, configs.OpenAIModel)
	ctrl := controller.NewChatController(svc)

	api.Post("/chat",
		middlewares.ChatRateLimiter(),
		authMiddleware.OptionalAuthMiddleware(),
		ctrl.Chat,
	)
}
