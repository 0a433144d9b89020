package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nextstep_backend/internals/configs"
	userModel "nextstep_backend/internals/features/users/user/model"
	authMiddleware "nextstep_backend/internals/middlewares/auth"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.InterestModel{},
		&userModel.UserInterestModel{},
	))

	app := fiber.New()
	ctrl := NewAuthController(db)
	auth := app.Group("/api/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/me", authMiddleware.AuthMiddleware(), ctrl.Me)
	return app, db
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func postJSON(t *testing.T, app *fiber.App, target string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestRegisterAndLogin(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/api/auth/register", fiber.Map{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == authMiddleware.SessionCookieName {
			cookie = c.Value
		}
	}
	assert.NotEmpty(t, cookie, "register must set the session cookie")

	env := decodeEnvelope(t, resp)
	var data struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Token)
	assert.Equal(t, "asha@example.com", data.User.Email)

	// duplicate registration is rejected
	resp = postJSON(t, app, "/api/auth/register", fiber.Map{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists with this email", decodeEnvelope(t, resp).Message)

	// login succeeds with the right password
	resp = postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeEnvelope(t, resp)

	// wrong password and unknown email share the same generic error
	resp = postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "asha@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", decodeEnvelope(t, resp).Message)

	resp = postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", decodeEnvelope(t, resp).Message)
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newTestApp(t)

	// short password
	resp := postJSON(t, app, "/api/auth/register", fiber.Map{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// bad email
	resp = postJSON(t, app, "/api/auth/register", fiber.Map{
		"name":     "Asha",
		"email":    "not-an-email",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMeRequiresSession(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// register, then call /me with the bearer token
	resp = postJSON(t, app, "/api/auth/register", fiber.Map{
		"name":     "Ravi",
		"email":    "ravi@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+data.Token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env = decodeEnvelope(t, resp)
	var me struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "ravi@example.com", me.User.Email)
}
