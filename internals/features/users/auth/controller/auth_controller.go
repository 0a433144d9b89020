package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nextstep_backend/internals/configs"
	authDTO "nextstep_backend/internals/features/users/auth/dto"
	authService "nextstep_backend/internals/features/users/auth/service"
	userModel "nextstep_backend/internals/features/users/user/model"
	helper "nextstep_backend/internals/helpers"
	authMiddleware "nextstep_backend/internals/middlewares/auth"
)

var validate = validator.New()

const bcryptCost = 12

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Register handles POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body authDTO.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing userModel.UserModel
	err := ctrl.DB.Where("email = ?", body.Email).First(&existing).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "User already exists with this email")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] register lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcryptCost)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	user := userModel.UserModel{
		Name:     body.Name,
		Email:    body.Email,
		Password: string(hashed),
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		log.Printf("[ERROR] create user: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	token, expiry, err := authService.SignSessionToken(user.ID, user.Email)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	setSessionCookie(c, token, expiry)

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Account created", authDTO.AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// Login handles POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body authDTO.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := ctrl.DB.Where("email = ?", body.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// generic on purpose: do not reveal which half was wrong
			return helper.Error(c, fiber.StatusBadRequest, "Invalid credentials")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if user.Password == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)) != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	now := time.Now()
	if err := ctrl.DB.Model(&user).Update("last_login", now).Error; err != nil {
		log.Printf("[WARN] update last_login: %v", err)
	}

	token, expiry, err := authService.SignSessionToken(user.ID, user.Email)
	if err != nil {
		log.Printf("[ERROR] sign token: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}
	setSessionCookie(c, token, expiry)

	return helper.Success(c, "Signed in", authDTO.AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// Logout handles POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authMiddleware.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return helper.Success(c, "Signed out", nil)
}

// Me handles GET /api/auth/me (session required)
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID := authMiddleware.UserID(c)
	if userID == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "User not found")
		}
		log.Printf("[ERROR] me lookup: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return helper.Success(c, "OK", fiber.Map{"user": toUserResponse(user)})
}

func toUserResponse(u userModel.UserModel) authDTO.UserResponse {
	return authDTO.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func setSessionCookie(c *fiber.Ctx, token string, expiry time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     authMiddleware.SessionCookieName,
		Value:    token,
		Expires:  expiry,
		HTTPOnly: true,
		Secure:   !configs.IsDevelopment(),
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
