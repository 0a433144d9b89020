package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ResponseAnswers is the JSON blob stored per response.
type ResponseAnswers struct {
	UserAnswers    []string          `json:"userAnswers"`
	CorrectAnswers []string          `json:"correctAnswers"`
	Questions      []json.RawMessage `json:"questions"`
}

// QuizResponseModel holds a user's single current result for a quiz. The
// composite unique index on (user_id, quiz_id) is what the retake upsert
// conflicts on: a retake overwrites, it never appends.
type QuizResponseModel struct {
	QuizResponseID      uuid.UUID      `gorm:"column:quiz_response_id;type:uuid;primaryKey" json:"quiz_response_id"`
	QuizResponseUserID  string         `gorm:"column:quiz_response_user_id;type:varchar(64);not null;uniqueIndex:uq_quiz_responses_user_quiz,priority:1" json:"quiz_response_user_id"`
	QuizResponseQuizID  uuid.UUID      `gorm:"column:quiz_response_quiz_id;type:uuid;not null;uniqueIndex:uq_quiz_responses_user_quiz,priority:2" json:"quiz_response_quiz_id"`
	QuizResponseAnswers datatypes.JSON `gorm:"column:quiz_response_answers;type:jsonb;not null" json:"quiz_response_answers"`
	QuizResponseScore   int            `gorm:"column:quiz_response_score;not null;default:0" json:"quiz_response_score"`

	QuizResponseSuggestedStreams pq.StringArray `gorm:"column:quiz_response_suggested_streams;type:text[]" json:"quiz_response_suggested_streams"`

	QuizResponseCompletedAt time.Time `gorm:"column:quiz_response_completed_at;not null" json:"quiz_response_completed_at"`
	QuizResponseCreatedAt   time.Time `gorm:"column:quiz_response_created_at;not null;autoCreateTime" json:"quiz_response_created_at"`
	QuizResponseUpdatedAt   time.Time `gorm:"column:quiz_response_updated_at;not null;autoUpdateTime" json:"quiz_response_updated_at"`

	Quiz *QuizModel `gorm:"foreignKey:QuizResponseQuizID;references:QuizID" json:"quiz,omitempty"`
}

func (QuizResponseModel) TableName() string { return "quiz_responses" }

func (m *QuizResponseModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuizResponseID == uuid.Nil {
		m.QuizResponseID = uuid.New()
	}
	return nil
}

func (m *QuizResponseModel) SetAnswers(a ResponseAnswers) error {
	b, err := json.Marshal(a)
	if err != nil {
		return err
	}
	m.QuizResponseAnswers = datatypes.JSON(b)
	return nil
}

func (m *QuizResponseModel) Answers() (ResponseAnswers, error) {
	var out ResponseAnswers
	if len(m.QuizResponseAnswers) == 0 {
		return out, nil
	}
	err := json.Unmarshal(m.QuizResponseAnswers, &out)
	return out, err
}
