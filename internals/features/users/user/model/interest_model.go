package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterestModel struct {
	InterestID          uuid.UUID `gorm:"column:interest_id;type:uuid;primaryKey" json:"interest_id"`
	InterestName        string    `gorm:"column:interest_name;size:120;not null;index:idx_interests_name" json:"interest_name"`
	InterestCategory    string    `gorm:"column:interest_category;type:varchar(32);not null" json:"interest_category"`
	InterestDescription *string   `gorm:"column:interest_description;type:text" json:"interest_description,omitempty"`

	InterestCreatedAt time.Time `gorm:"column:interest_created_at;autoCreateTime" json:"interest_created_at"`
}

func (InterestModel) TableName() string { return "interests" }

func (m *InterestModel) BeforeCreate(tx *gorm.DB) error {
	if m.InterestID == uuid.Nil {
		m.InterestID = uuid.New()
	}
	return nil
}

// UserInterestModel links a user to an interest with a 1..5 strength.
type UserInterestModel struct {
	UserInterestID uuid.UUID `gorm:"column:user_interest_id;type:uuid;primaryKey" json:"user_interest_id"`
	UserID         string    `gorm:"column:user_id;type:varchar(64);not null;uniqueIndex:uq_user_interests,priority:1" json:"user_id"`
	InterestID     uuid.UUID `gorm:"column:interest_id;type:uuid;not null;uniqueIndex:uq_user_interests,priority:2" json:"interest_id"`
	Strength       int       `gorm:"column:strength;not null;default:3" json:"strength"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Interest *InterestModel `gorm:"foreignKey:InterestID;references:InterestID" json:"interest,omitempty"`
}

func (UserInterestModel) TableName() string { return "user_interests" }

func (m *UserInterestModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserInterestID == uuid.Nil {
		m.UserInterestID = uuid.New()
	}
	return nil
}

// Interest categories (default bucket is SERVICE until curated).
const (
	InterestCategoryService    = "SERVICE"
	InterestCategoryTechnical  = "TECHNICAL"
	InterestCategoryCreative   = "CREATIVE"
	InterestCategoryManagement = "MANAGEMENT"
)
