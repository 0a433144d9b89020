package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"nextstep_backend/internals/features/assessments/quiz/model"
	userModel "nextstep_backend/internals/features/users/user/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&userModel.InterestModel{},
		&userModel.UserInterestModel{},
		&model.QuizModel{},
		&model.QuizQuestionModel{},
		&model.QuizResponseModel{},
	))

	app := fiber.New()
	ctrl := NewAssessmentController(db)
	app.Post("/api/assessment", ctrl.SubmitAssessment)
	app.Get("/api/assessment", ctrl.GetAssessments)
	return app, db
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func submitBody(topic, userID string, score int) fiber.Map {
	questions := make([]fiber.Map, 5)
	answers := make([]string, 5)
	for i := range questions {
		correct := fmt.Sprintf("A%d", i+1)
		questions[i] = fiber.Map{
			"question":    fmt.Sprintf("Q%d", i+1),
			"answer":      correct,
			"options":     []string{correct, "B", "C", "D"},
			"explanation": "because",
		}
		if i < score {
			answers[i] = correct
		} else {
			answers[i] = "B"
		}
	}
	return fiber.Map{
		"topic":          topic,
		"questions":      questions,
		"userAnswers":    answers,
		"score":          score,
		"totalQuestions": 5,
		"userId":         userID,
	}
}

func TestSubmitAssessmentFirstTime(t *testing.T) {
	app, _ := newTestApp(t)

	code, env := doJSON(t, app, http.MethodPost, "/api/assessment", submitBody("Mathematics", "user-1", 5))
	assert.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Success)
	assert.Equal(t, "Quiz data saved successfully", env.Message)

	var data struct {
		Score      int    `json:"score"`
		Percentage int    `json:"percentage"`
		UserID     string `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 5, data.Score)
	assert.Equal(t, 100, data.Percentage)
	assert.Equal(t, "user-1", data.UserID)
}

func TestSubmitAssessmentRetakeReturnsOK(t *testing.T) {
	app, db := newTestApp(t)

	code, _ := doJSON(t, app, http.MethodPost, "/api/assessment", submitBody("Physics", "user-1", 4))
	require.Equal(t, http.StatusCreated, code)

	code, env := doJSON(t, app, http.MethodPost, "/api/assessment", submitBody("Physics", "user-1", 0))
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	var count int64
	require.NoError(t, db.Model(&model.QuizResponseModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitAssessmentMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	for _, body := range []fiber.Map{
		{"questions": []fiber.Map{}, "userAnswers": []string{}, "score": 0},
		{"topic": "Math", "userAnswers": []string{}, "score": 0},
		{"topic": "Math", "questions": []fiber.Map{}, "score": 0},
		{"topic": "Math", "questions": []fiber.Map{}, "userAnswers": []string{}},
	} {
		code, env := doJSON(t, app, http.MethodPost, "/api/assessment", body)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.False(t, env.Success)
		assert.Equal(t, "Missing required fields: topic, questions, userAnswers, score", env.Message)
	}
}

func TestSubmitAssessmentNonNumericScore(t *testing.T) {
	app, _ := newTestApp(t)

	body := submitBody("Math", "user-1", 3)
	body["score"] = "three"
	code, env := doJSON(t, app, http.MethodPost, "/api/assessment", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
}

func TestGetAssessmentsEmptyForUnknownUser(t *testing.T) {
	app, _ := newTestApp(t)

	code, env := doJSON(t, app, http.MethodGet, "/api/assessment?userId=nobody", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	assert.Equal(t, "Quiz history fetched successfully", env.Message)
	// empty history is an empty array, never null
	assert.JSONEq(t, "[]", string(env.Data))
}

func TestGetAssessmentsReturnsHistory(t *testing.T) {
	app, _ := newTestApp(t)

	code, _ := doJSON(t, app, http.MethodPost, "/api/assessment", submitBody("Mathematics", "user-1", 3))
	require.Equal(t, http.StatusCreated, code)

	code, env := doJSON(t, app, http.MethodGet, "/api/assessment?userId=user-1", nil)
	assert.Equal(t, http.StatusOK, code)

	var items []struct {
		UserID string `json:"userId"`
		Score  int    `json:"score"`
		Quiz   *struct {
			Title     string `json:"title"`
			Questions []struct {
				Order int `json:"order"`
			} `json:"questions"`
		} `json:"quiz"`
		SuggestedStreams []string `json:"suggestedStreams"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "user-1", items[0].UserID)
	assert.Equal(t, 3, items[0].Score)
	require.NotNil(t, items[0].Quiz)
	assert.Equal(t, "Mathematics", items[0].Quiz.Title)
	require.Len(t, items[0].Quiz.Questions, 5)
	assert.Equal(t, 1, items[0].Quiz.Questions[0].Order)
	assert.NotNil(t, items[0].SuggestedStreams)
}
