package controller

import (
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

	"nextstep_backend/internals/features/directories/colleges/model"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.CollegeModel{}))
	require.NoError(t, model.SeedIfEmpty(db))

	app := fiber.New()
	ctrl := NewCollegeController(db)
	app.Get("/api/colleges", ctrl.ListColleges)
	app.Get("/api/colleges/:id", ctrl.GetCollege)
	return app, db
}

func get(t *testing.T, app *fiber.App, target string) (int, json.RawMessage) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env.Data
}

func TestSeedIsIdempotent(t *testing.T) {
	_, db := newTestApp(t)

	var before int64
	require.NoError(t, db.Model(&model.CollegeModel{}).Count(&before).Error)
	require.Positive(t, before)

	require.NoError(t, model.SeedIfEmpty(db))
	var after int64
	require.NoError(t, db.Model(&model.CollegeModel{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestListColleges(t *testing.T) {
	app, _ := newTestApp(t)

	code, data := get(t, app, "/api/colleges")
	require.Equal(t, http.StatusOK, code)

	var body struct {
		Colleges []struct {
			Name     string   `json:"college_name"`
			Rating   float64  `json:"college_rating"`
			Branches []string `json:"college_branches"`
		} `json:"colleges"`
		Pagination struct {
			Page  int   `json:"page"`
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(data, &body))
	require.NotEmpty(t, body.Colleges)
	assert.EqualValues(t, len(body.Colleges), body.Pagination.Total)
	assert.Equal(t, 1, body.Pagination.Page)

	// rating descending
	for i := 1; i < len(body.Colleges); i++ {
		assert.GreaterOrEqual(t, body.Colleges[i-1].Rating, body.Colleges[i].Rating)
	}
	assert.NotEmpty(t, body.Colleges[0].Branches)
}

func TestListCollegesPaging(t *testing.T) {
	app, _ := newTestApp(t)

	code, data := get(t, app, "/api/colleges?page=1&per_page=3")
	require.Equal(t, http.StatusOK, code)

	var body struct {
		Colleges   []json.RawMessage `json:"colleges"`
		Pagination struct {
			PerPage int  `json:"per_page"`
			HasNext bool `json:"has_next"`
			Count   int  `json:"count"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Len(t, body.Colleges, 3)
	assert.Equal(t, 3, body.Pagination.PerPage)
	assert.Equal(t, 3, body.Pagination.Count)
	assert.True(t, body.Pagination.HasNext)
}

func TestGetCollege(t *testing.T) {
	app, db := newTestApp(t)

	var row model.CollegeModel
	require.NoError(t, db.First(&row).Error)

	code, data := get(t, app, "/api/colleges/"+row.CollegeID.String())
	require.Equal(t, http.StatusOK, code)

	var fetched model.CollegeModel
	require.NoError(t, json.Unmarshal(data, &fetched))
	assert.Equal(t, row.CollegeName, fetched.CollegeName)

	code, _ = get(t, app, "/api/colleges/00000000-0000-0000-0000-000000000000")
	assert.Equal(t, http.StatusNotFound, code)
}
