package dto

import (
	"encoding/json"
	"math"
	"time"

	"github.com/google/uuid"

	"nextstep_backend/internals/features/assessments/quiz/model"
)

/* =========================================================
   SUBMIT
========================================================= */

// QuestionPayload mirrors the question source's wire shape. Option and answer
// text are kept verbatim; scoring is exact string equality.
type QuestionPayload struct {
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Options     []string `json:"options"`
	Explanation string   `json:"explanation"`
}

// SubmitAssessmentRequest is the POST /api/assessment body. Score is a pointer
// so "missing" and "zero" stay distinguishable; a non-numeric score already
// fails JSON decoding. No range check of score vs totalQuestions is performed
// (known gap, kept on purpose).
type SubmitAssessmentRequest struct {
	Topic          string            `json:"topic"`
	Questions      []QuestionPayload `json:"questions"`
	UserAnswers    []string          `json:"userAnswers"`
	Score          *int              `json:"score"`
	TotalQuestions int               `json:"totalQuestions"`
	CompletedAt    string            `json:"completedAt"`
	UserID         string            `json:"userId"`
}

// ValidateRequired reports the first missing required field, mirroring the
// submit contract: topic, questions, userAnswers and a numeric score must be
// present. Empty arrays are allowed (a zero-question payload is legal).
func (r *SubmitAssessmentRequest) ValidateRequired() (string, bool) {
	if r.Topic == "" {
		return "topic", false
	}
	if r.Questions == nil {
		return "questions", false
	}
	if r.UserAnswers == nil {
		return "userAnswers", false
	}
	if r.Score == nil {
		return "score", false
	}
	return "", true
}

// CorrectAnswers extracts each question's answer field, in order.
func (r *SubmitAssessmentRequest) CorrectAnswers() []string {
	out := make([]string, 0, len(r.Questions))
	for _, q := range r.Questions {
		out = append(out, q.Answer)
	}
	return out
}

// RawQuestions re-encodes the submitted questions for the answers blob.
func (r *SubmitAssessmentRequest) RawQuestions() ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(r.Questions))
	for _, q := range r.Questions {
		b, err := json.Marshal(q)
		if err != nil {
			return nil, err
		}
		out = append(out, json.RawMessage(b))
	}
	return out, nil
}

/* =========================================================
   RESULT ECHO
========================================================= */

// AssessmentResult is the canonicalized record echoed back after a submit.
type AssessmentResult struct {
	ID             uuid.UUID         `json:"id"`
	Topic          string            `json:"topic"`
	Questions      []QuestionPayload `json:"questions"`
	UserAnswers    []string          `json:"userAnswers"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"totalQuestions"`
	Percentage     int               `json:"percentage"`
	CompletedAt    time.Time         `json:"completedAt"`
	UserID         string            `json:"userId"`
}

// Percentage rounds score/total to a whole percent. total <= 0 is defined as
// 0, never a division by zero.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

/* =========================================================
   HISTORY
========================================================= */

type HistoryQuizQuestionDTO struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Type     string    `json:"type"`
	Options  []string  `json:"options"`
	Order    int       `json:"order"`
}

type HistoryQuizDTO struct {
	ID             uuid.UUID                `json:"id"`
	Title          string                   `json:"title"`
	Category       string                   `json:"category"`
	TargetLevel    string                   `json:"targetLevel"`
	TotalQuestions int                      `json:"totalQuestions"`
	IsActive       bool                     `json:"isActive"`
	Questions      []HistoryQuizQuestionDTO `json:"questions"`
}

type HistoryItemDTO struct {
	ID               uuid.UUID             `json:"id"`
	UserID           string                `json:"userId"`
	QuizID           uuid.UUID             `json:"quizId"`
	Answers          model.ResponseAnswers `json:"answers"`
	Score            int                   `json:"score"`
	SuggestedStreams []string              `json:"suggestedStreams"`
	CompletedAt      time.Time             `json:"completedAt"`
	Quiz             *HistoryQuizDTO       `json:"quiz,omitempty"`
}

func ToHistoryItemDTO(m model.QuizResponseModel) HistoryItemDTO {
	answers, _ := m.Answers()
	streams := []string(m.QuizResponseSuggestedStreams)
	if streams == nil {
		streams = []string{}
	}

	item := HistoryItemDTO{
		ID:               m.QuizResponseID,
		UserID:           m.QuizResponseUserID,
		QuizID:           m.QuizResponseQuizID,
		Answers:          answers,
		Score:            m.QuizResponseScore,
		SuggestedStreams: streams,
		CompletedAt:      m.QuizResponseCompletedAt,
	}

	if m.Quiz != nil {
		quiz := HistoryQuizDTO{
			ID:             m.Quiz.QuizID,
			Title:          m.Quiz.QuizTitle,
			Category:       m.Quiz.QuizCategory,
			TargetLevel:    m.Quiz.QuizTargetLevel,
			TotalQuestions: m.Quiz.QuizTotalQuestions,
			IsActive:       m.Quiz.QuizIsActive,
			Questions:      make([]HistoryQuizQuestionDTO, 0, len(m.Quiz.QuizQuestions)),
		}
		for _, q := range m.Quiz.QuizQuestions {
			options, _ := q.Options()
			quiz.Questions = append(quiz.Questions, HistoryQuizQuestionDTO{
				ID:       q.QuizQuestionID,
				Question: q.QuizQuestionText,
				Type:     q.QuizQuestionType,
				Options:  options,
				Order:    q.QuizQuestionOrder,
			})
		}
		item.Quiz = &quiz
	}

	return item
}
