package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizQuestionModel rows are materialized once, in submission order, the first
// time a topic is persisted. Options keep the source's literal text verbatim;
// answer comparison elsewhere relies on that.
type QuizQuestionModel struct {
	QuizQuestionID      uuid.UUID      `gorm:"column:quiz_question_id;type:uuid;primaryKey" json:"quiz_question_id"`
	QuizQuestionQuizID  uuid.UUID      `gorm:"column:quiz_question_quiz_id;type:uuid;not null;index:idx_quiz_questions_quiz" json:"quiz_question_quiz_id"`
	QuizQuestionText    string         `gorm:"column:quiz_question_text;type:text;not null" json:"quiz_question_text"`
	QuizQuestionType    string         `gorm:"column:quiz_question_type;type:varchar(32);not null" json:"quiz_question_type"`
	QuizQuestionOptions datatypes.JSON `gorm:"column:quiz_question_options;type:jsonb" json:"quiz_question_options"`
	QuizQuestionOrder   int            `gorm:"column:quiz_question_order;not null" json:"quiz_question_order"` // 1-based within quiz

	QuizQuestionCreatedAt time.Time `gorm:"column:quiz_question_created_at;not null;autoCreateTime" json:"quiz_question_created_at"`
}

func (QuizQuestionModel) TableName() string { return "quiz_questions" }

func (m *QuizQuestionModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuizQuestionID == uuid.Nil {
		m.QuizQuestionID = uuid.New()
	}
	return nil
}

// SetOptions stores the ordered option list as a JSON array.
func (m *QuizQuestionModel) SetOptions(options []string) error {
	b, err := json.Marshal(options)
	if err != nil {
		return err
	}
	m.QuizQuestionOptions = datatypes.JSON(b)
	return nil
}

func (m *QuizQuestionModel) Options() ([]string, error) {
	var out []string
	if len(m.QuizQuestionOptions) == 0 {
		return out, nil
	}
	err := json.Unmarshal(m.QuizQuestionOptions, &out)
	return out, err
}
