package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel represents the users table. IDs are plain text: most rows come
// from the auth flow with generated ids, but the demo fallback identity
// ("demo-user") must be storable as-is.
type UserModel struct {
	ID       string  `gorm:"column:id;type:varchar(64);primaryKey" json:"id"`
	Name     string  `gorm:"column:name;size:120;not null" json:"name"`
	Email    string  `gorm:"column:email;size:255;unique;not null" json:"email"`
	Password string  `gorm:"column:password" json:"-"`
	Phone    *string `gorm:"column:phone;size:32" json:"phone,omitempty"`

	DateOfBirth           *time.Time `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	Gender                *string    `gorm:"column:gender;type:varchar(24)" json:"gender,omitempty"`
	Location              *string    `gorm:"column:location;size:160" json:"location,omitempty"`
	CurrentEducationLevel *string    `gorm:"column:current_education_level;type:varchar(24)" json:"current_education_level,omitempty"`
	CurrentClass          *string    `gorm:"column:current_class;size:32" json:"current_class,omitempty"`
	BoardOfEducation      *string    `gorm:"column:board_of_education;size:32" json:"board_of_education,omitempty"`
	ProfileCompleted      bool       `gorm:"column:profile_completed;not null;default:false" json:"profile_completed"`

	LastLogin *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	UserInterests []UserInterestModel `gorm:"foreignKey:UserID;references:ID" json:"user_interests,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Gender values mirror the profile enum.
const (
	GenderMale           = "MALE"
	GenderFemale         = "FEMALE"
	GenderOther          = "OTHER"
	GenderPreferNotToSay = "PREFER_NOT_TO_SAY"
)

// Education levels.
const (
	EducationClass10       = "CLASS_10"
	EducationClass12       = "CLASS_12"
	EducationUndergraduate = "UNDERGRADUATE"
	EducationPostgraduate  = "POSTGRADUATE"
)
