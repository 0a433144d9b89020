package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nextstep_backend/internals/features/users/user/dto"
	"nextstep_backend/internals/features/users/user/model"
	helper "nextstep_backend/internals/helpers"
	authMiddleware "nextstep_backend/internals/middlewares/auth"
)

var validate = validator.New()

type UserProfileController struct {
	DB *gorm.DB
}

func NewUserProfileController(db *gorm.DB) *UserProfileController {
	return &UserProfileController{DB: db}
}

// GetProfile handles GET /api/user/profile
func (ctrl *UserProfileController) GetProfile(c *fiber.Ctx) error {
	userID := authMiddleware.UserID(c)
	if userID == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user model.UserModel
	err := ctrl.DB.
		Preload("UserInterests.Interest").
		Where("id = ?", userID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] fetch profile: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user profile")
	}

	return helper.Success(c, "User profile fetched successfully", dto.ToProfileResponse(user))
}

// UpdateProfile handles PUT /api/user/profile: upserts the demographic fields
// from the onboarding wizard and replaces the interest links.
func (ctrl *UserProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID := authMiddleware.UserID(c)
	if userID == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	email, _ := c.Locals("user_email").(string)

	var body dto.OnboardingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	birthDate, err := body.BirthDate()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid dateOfBirth")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var user model.UserModel
		err := tx.Where("id = ?", userID).First(&user).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if email == "" {
				email = fmt.Sprintf("%s@example.com", userID)
			}
			user = model.UserModel{ID: userID, Email: email}
			applyOnboarding(&user, &body, birthDate)
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			applyOnboarding(&user, &body, birthDate)
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}

		return replaceInterests(tx, userID, body.CareerInterests)
	})
	if err != nil {
		log.Printf("[ERROR] update profile: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update user profile")
	}

	return helper.Success(c, "User profile updated successfully", fiber.Map{
		"userId":         userID,
		"onboardingData": body,
	})
}

func applyOnboarding(user *model.UserModel, body *dto.OnboardingRequest, birthDate time.Time) {
	user.Name = body.FullName
	user.DateOfBirth = &birthDate

	gender := body.GenderEnum()
	user.Gender = &gender

	if location := body.Location(); location != "" {
		user.Location = &location
	}
	if body.PhoneNumber != "" {
		user.Phone = &body.PhoneNumber
	}
	if level := body.EducationEnum(); level != "" {
		user.CurrentEducationLevel = &level
	}
	if body.CurrentClass != "" {
		user.CurrentClass = &body.CurrentClass
	}
	if body.Board != "" {
		user.BoardOfEducation = &body.Board
	}
	user.ProfileCompleted = true
}

// replaceInterests clears the user's interest links and relinks the submitted
// set, creating interest rows on first sight (default SERVICE bucket).
func replaceInterests(tx *gorm.DB, userID string, names []string) error {
	if len(names) == 0 {
		return nil
	}

	if err := tx.Where("user_id = ?", userID).Delete(&model.UserInterestModel{}).Error; err != nil {
		return err
	}

	for _, name := range names {
		var interest model.InterestModel
		err := tx.Where("interest_name = ?", name).First(&interest).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			description := fmt.Sprintf("Interest in %s", name)
			interest = model.InterestModel{
				InterestName:        name,
				InterestCategory:    model.InterestCategoryService,
				InterestDescription: &description,
			}
			if err := tx.Create(&interest).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		link := model.UserInterestModel{
			UserID:     userID,
			InterestID: interest.InterestID,
			Strength:   3,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}
