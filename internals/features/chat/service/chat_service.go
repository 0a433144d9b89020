package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"gorm.io/gorm"

	chatDTO "nextstep_backend/internals/features/chat/dto"
	userModel "nextstep_backend/internals/features/users/user/model"
)

// ErrNotConfigured is returned when no OpenAI API key was provided at boot.
var ErrNotConfigured = errors.New("chat service not configured")

const systemPrompt = `You are NextStep's career counselor for Indian school students.
Give practical, encouraging guidance about streams, degrees, entrance exams,
colleges and certifications. Keep answers concise and actionable. If a question
is unrelated to careers or education, gently steer the student back.`

const maxHistoryMessages = 20

type ChatService struct {
	DB     *gorm.DB
	client *openai.Client
	model  string
}

func NewChatService(db *gorm.DB, apiKey, model string) *ChatService {
	svc := &ChatService{DB: db, model: model}
	if apiKey != "" {
		svc.client = openai.NewClient(apiKey)
	}
	return svc
}

func (s *ChatService) Configured() bool { return s.client != nil }

// Reply relays the conversation to the model. userID may be empty; when set
// and the profile exists, a short profile summary is appended to the system
// prompt so answers can reference the student's class and interests.
func (s *ChatService) Reply(ctx context.Context, userID string, req *chatDTO.ChatRequest) (string, error) {
	if s.client == nil {
		return "", ErrNotConfigured
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: s.systemPromptFor(userID)},
	}

	history := req.History
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	for _, m := range history {
		if m.Role == openai.ChatMessageRoleSystem {
			continue
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Message,
	})

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    s.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *ChatService) systemPromptFor(userID string) string {
	if userID == "" || s.DB == nil {
		return systemPrompt
	}

	var user userModel.UserModel
	err := s.DB.Preload("UserInterests.Interest").Where("id = ?", userID).First(&user).Error
	if err != nil {
		return systemPrompt
	}

	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\nStudent profile:")
	if user.Name != "" {
		fmt.Fprintf(&sb, "\n- Name: %s", user.Name)
	}
	if user.CurrentClass != nil {
		fmt.Fprintf(&sb, "\n- Class: %s", *user.CurrentClass)
	}
	if user.Location != nil {
		fmt.Fprintf(&sb, "\n- Location: %s", *user.Location)
	}
	if len(user.UserInterests) > 0 {
		names := make([]string, 0, len(user.UserInterests))
		for _, ui := range user.UserInterests {
			if ui.Interest != nil {
				names = append(names, ui.Interest.InterestName)
			}
		}
		if len(names) > 0 {
			fmt.Fprintf(&sb, "\n- Interests: %s", strings.Join(names, ", "))
		}
	}
	return sb.String()
}
