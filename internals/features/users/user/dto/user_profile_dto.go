package dto

import (
	"strings"
	"time"

	"nextstep_backend/internals/features/users/user/model"
)

// OnboardingRequest is the PUT /api/user/profile payload straight from the
// onboarding wizard.
type OnboardingRequest struct {
	FullName    string `json:"fullName" validate:"required"`
	DateOfBirth string `json:"dateOfBirth" validate:"required"`
	Gender      string `json:"gender" validate:"required,oneof=male female other prefer-not-to-say"`
	PhoneNumber string `json:"phoneNumber"`
	District    string `json:"district"`
	Tehsil      string `json:"tehsil"`

	CurrentClass         string `json:"currentClass"`
	CurrentSchoolCollege string `json:"currentSchoolCollege"`
	Board                string `json:"board"`
	Stream               string `json:"stream"`
	PreviousMarks        string `json:"previousMarks"`

	HasAppearForEntrance bool     `json:"hasAppearForEntrance"`
	EntranceExams        []string `json:"entranceExams"`

	CareerInterests       []string `json:"careerInterests"`
	PreferredFieldOfStudy []string `json:"preferredFieldOfStudy"`
	StudyPreference       string   `json:"studyPreference"`
	LocationPreference    string   `json:"locationPreference"`
	BudgetRange           string   `json:"budgetRange"`
	AdditionalInfo        string   `json:"additionalInfo"`
}

// GenderEnum maps the wizard value onto the storage enum; unknown values fall
// back to PREFER_NOT_TO_SAY.
func (r *OnboardingRequest) GenderEnum() string {
	switch r.Gender {
	case "male":
		return model.GenderMale
	case "female":
		return model.GenderFemale
	case "other":
		return model.GenderOther
	default:
		return model.GenderPreferNotToSay
	}
}

// EducationEnum maps currentClass onto the education level enum; "other" and
// unknown values yield empty (column left NULL).
func (r *OnboardingRequest) EducationEnum() string {
	switch r.CurrentClass {
	case "class-10":
		return model.EducationClass10
	case "class-12":
		return model.EducationClass12
	case "undergraduate":
		return model.EducationUndergraduate
	case "postgraduate":
		return model.EducationPostgraduate
	default:
		return ""
	}
}

// Location joins district and tehsil the way the profile page displays it.
func (r *OnboardingRequest) Location() string {
	parts := []string{}
	if r.District != "" {
		parts = append(parts, r.District)
	}
	if r.Tehsil != "" {
		parts = append(parts, r.Tehsil)
	}
	return strings.Join(parts, ", ")
}

func (r *OnboardingRequest) BirthDate() (time.Time, error) {
	// the wizard posts yyyy-mm-dd; accept full RFC3339 too
	if t, err := time.Parse("2006-01-02", r.DateOfBirth); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, r.DateOfBirth)
}

/* =========================================================
   RESPONSES
========================================================= */

type ProfileInterestDTO struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Strength int    `json:"strength"`
}

type ProfileResponse struct {
	User      model.UserModel      `json:"user"`
	Interests []ProfileInterestDTO `json:"interests"`
}

func ToProfileResponse(u model.UserModel) ProfileResponse {
	interests := make([]ProfileInterestDTO, 0, len(u.UserInterests))
	for _, ui := range u.UserInterests {
		item := ProfileInterestDTO{Strength: ui.Strength}
		if ui.Interest != nil {
			item.Name = ui.Interest.InterestName
			item.Category = ui.Interest.InterestCategory
		}
		interests = append(interests, item)
	}
	return ProfileResponse{User: u, Interests: interests}
}
