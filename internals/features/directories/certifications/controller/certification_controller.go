package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"nextstep_backend/internals/features/directories/certifications/dto"
	"nextstep_backend/internals/features/directories/certifications/model"
	helper "nextstep_backend/internals/helpers"
)

type CertificationController struct {
	DB *gorm.DB
}

func NewCertificationController(db *gorm.DB) *CertificationController {
	return &CertificationController{DB: db}
}

// ListCertifications handles GET /api/certifications with optional filters
// and paging.
func (ctrl *CertificationController) ListCertifications(c *fiber.Ctx) error {
	var filter dto.CertificationFilter
	if err := c.QueryParser(&filter); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CertificationModel{})
	if filter.Category != "" {
		q = q.Where("LOWER(certification_category) = ?", strings.ToLower(filter.Category))
	}
	if filter.Level != "" {
		q = q.Where("certification_level = ?", strings.ToUpper(filter.Level))
	}
	if filter.Provider != "" {
		q = q.Where("LOWER(certification_provider) = ?", strings.ToLower(filter.Provider))
	}
	if filter.PriceRange != "" {
		q = q.Where("certification_price_range = ?", filter.PriceRange)
	}
	if filter.Search != "" {
		q = q.Where("certification_name ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count certifications: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch certifications")
	}

	var rows []model.CertificationModel
	err := q.Order("certification_name ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		log.Printf("[ERROR] list certifications: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch certifications")
	}

	return helper.Success(c, "Certifications fetched successfully", fiber.Map{
		"certifications": rows,
		"pagination":     helper.BuildPagination(total, paging, len(rows)),
	})
}

// GetCertification handles GET /api/certifications/:id
func (ctrl *CertificationController) GetCertification(c *fiber.Ctx) error {
	var row model.CertificationModel
	err := ctrl.DB.Where("certification_id = ?", c.Params("id")).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "Certification not found")
		}
		log.Printf("[ERROR] get certification: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch certification")
	}
	return helper.Success(c, "Certification fetched successfully", row)
}
