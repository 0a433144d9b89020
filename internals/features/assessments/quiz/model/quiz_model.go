package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizModel is one topic's assessment definition. A topic name acts as the
// de-facto quiz identifier within a category: lookup goes through
// (quiz_title, quiz_category) but there is NO unique constraint there, so a
// concurrent first submission of a brand-new topic can create two rows
// (first-writer-wins). Kept as-is pending a product decision.
type QuizModel struct {
	QuizID          uuid.UUID `gorm:"column:quiz_id;type:uuid;primaryKey" json:"quiz_id"`
	QuizTitle       string    `gorm:"column:quiz_title;type:varchar(180);not null;index:idx_quizzes_title_category,priority:1" json:"quiz_title"`
	QuizDescription *string   `gorm:"column:quiz_description;type:text" json:"quiz_description,omitempty"`
	QuizCategory    string    `gorm:"column:quiz_category;type:varchar(32);not null;index:idx_quizzes_title_category,priority:2" json:"quiz_category"`
	QuizTargetLevel string    `gorm:"column:quiz_target_level;type:varchar(32);not null" json:"quiz_target_level"`

	QuizTotalQuestions int  `gorm:"column:quiz_total_questions;not null;default:0" json:"quiz_total_questions"`
	QuizIsActive       bool `gorm:"column:quiz_is_active;not null;default:true" json:"quiz_is_active"`

	QuizCreatedAt time.Time `gorm:"column:quiz_created_at;not null;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt time.Time `gorm:"column:quiz_updated_at;not null;autoUpdateTime" json:"quiz_updated_at"`

	QuizQuestions []QuizQuestionModel `gorm:"foreignKey:QuizQuestionQuizID;references:QuizID" json:"quiz_questions,omitempty"`
}

func (QuizModel) TableName() string { return "quizzes" }

func (m *QuizModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuizID == uuid.Nil {
		m.QuizID = uuid.New()
	}
	return nil
}
