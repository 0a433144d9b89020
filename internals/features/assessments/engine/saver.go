package engine

import (
	"context"
	"time"

	"nextstep_backend/internals/features/assessments/quiz/dto"
	"nextstep_backend/internals/features/assessments/quiz/service"
)

// ServiceSaver persists completed results straight through the assessment
// service, the same pipeline POST /api/assessment uses.
type ServiceSaver struct {
	Service *service.AssessmentService
}

func NewServiceSaver(svc *service.AssessmentService) *ServiceSaver {
	return &ServiceSaver{Service: svc}
}

func (s *ServiceSaver) SaveResult(ctx context.Context, result *Result) error {
	questions := make([]dto.QuestionPayload, 0, len(result.Questions))
	for _, q := range result.Questions {
		questions = append(questions, dto.QuestionPayload{
			Question:    q.Question,
			Answer:      q.Answer,
			Options:     q.Options,
			Explanation: q.Explanation,
		})
	}

	score := result.Score
	req := &dto.SubmitAssessmentRequest{
		Topic:          result.Topic,
		Questions:      questions,
		UserAnswers:    result.UserAnswers,
		Score:          &score,
		TotalQuestions: result.TotalQuestions,
		CompletedAt:    result.CompletedAt.Format(time.RFC3339),
		UserID:         result.UserID,
	}

	_, _, err := s.Service.Submit(ctx, req)
	return err
}
