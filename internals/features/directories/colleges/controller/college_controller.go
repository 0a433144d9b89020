package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nextstep_backend/internals/features/directories/colleges/dto"
	"nextstep_backend/internals/features/directories/colleges/model"
	helper "nextstep_backend/internals/helpers"
)

type CollegeController struct {
	DB *gorm.DB
}

func NewCollegeController(db *gorm.DB) *CollegeController {
	return &CollegeController{DB: db}
}

// ListColleges handles GET /api/colleges with optional filters and paging.
func (ctrl *CollegeController) ListColleges(c *fiber.Ctx) error {
	var filter dto.CollegeFilter
	if err := c.QueryParser(&filter); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CollegeModel{})
	if filter.Location != "" {
		q = q.Where("LOWER(college_location) = ?", strings.ToLower(filter.Location))
	}
	if filter.Type != "" {
		q = q.Where("college_type = ?", strings.ToUpper(filter.Type))
	}
	if filter.Branch != "" {
		q = q.Where("? = ANY(college_branches)", filter.Branch)
	}
	if filter.DegreeType != "" {
		q = q.Where("? = ANY(college_degree_types)", filter.DegreeType)
	}
	if filter.Search != "" {
		q = q.Where("college_name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count colleges: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch colleges")
	}

	var rows []model.CollegeModel
	err := q.Order("college_rating DESC, college_name ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		log.Printf("[ERROR] list colleges: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch colleges")
	}

	return helper.Success(c, "Colleges fetched successfully", fiber.Map{
		"colleges":   rows,
		"pagination": helper.BuildPagination(total, paging, len(rows)),
	})
}

// GetCollege handles GET /api/colleges/:id
func (ctrl *CollegeController) GetCollege(c *fiber.Ctx) error {
	var row model.CollegeModel
	err := ctrl.DB.Where("college_id = ?", c.Params("id")).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "College not found")
		}
		log.Printf("[ERROR] get college: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch college")
	}
	return helper.Success(c, "College fetched successfully", row)
}
