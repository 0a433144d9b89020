package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CertificationModel is a row in the browsable certification directory.
type CertificationModel struct {
	CertificationID         uuid.UUID      `gorm:"column:certification_id;type:uuid;primaryKey" json:"certification_id"`
	CertificationName       string         `gorm:"column:certification_name;size:200;not null;index:idx_certifications_name" json:"certification_name"`
	CertificationProvider   string         `gorm:"column:certification_provider;size:120;not null" json:"certification_provider"`
	CertificationCategory   string         `gorm:"column:certification_category;size:60;not null;index:idx_certifications_category" json:"certification_category"`
	CertificationLevel      string         `gorm:"column:certification_level;size:30;not null" json:"certification_level"`
	CertificationDuration   string         `gorm:"column:certification_duration;size:60" json:"certification_duration"`
	CertificationPriceRange string         `gorm:"column:certification_price_range;size:60" json:"certification_price_range"`
	CertificationSkills     pq.StringArray `gorm:"column:certification_skills;type:text[]" json:"certification_skills"`
	CertificationWebsite    string         `gorm:"column:certification_website;size:255" json:"certification_website"`
	CreatedAt               time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt               time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CertificationModel) TableName() string { return "certifications" }

func (m *CertificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.CertificationID == uuid.Nil {
		m.CertificationID = uuid.New()
	}
	return nil
}

const (
	CertificationLevelBeginner     = "BEGINNER"
	CertificationLevelIntermediate = "INTERMEDIATE"
	CertificationLevelAdvanced     = "ADVANCED"
)

// SeedIfEmpty loads the starter directory on a fresh database.
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&CertificationModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := []CertificationModel{
		{
			CertificationName:       "Google Data Analytics Professional Certificate",
			CertificationProvider:   "Google",
			CertificationCategory:   "Data Science",
			CertificationLevel:      CertificationLevelBeginner,
			CertificationDuration:   "6 months",
			CertificationPriceRange: "Under 5,000 INR",
			CertificationSkills:     pq.StringArray{"SQL", "Spreadsheets", "Data Visualization"},
			CertificationWebsite:    "https://grow.google/dataanalytics",
		},
		{
			CertificationName:       "AWS Certified Cloud Practitioner",
			CertificationProvider:   "Amazon Web Services",
			CertificationCategory:   "Cloud Computing",
			CertificationLevel:      CertificationLevelBeginner,
			CertificationDuration:   "3 months",
			CertificationPriceRange: "5,000-10,000 INR",
			CertificationSkills:     pq.StringArray{"Cloud Basics", "AWS Services", "Security"},
			CertificationWebsite:    "https://aws.amazon.com/certification",
		},
		{
			CertificationName:       "Meta Front-End Developer Professional Certificate",
			CertificationProvider:   "Meta",
			CertificationCategory:   "Web Development",
			CertificationLevel:      CertificationLevelBeginner,
			CertificationDuration:   "7 months",
			CertificationPriceRange: "Under 5,000 INR",
			CertificationSkills:     pq.StringArray{"HTML", "CSS", "JavaScript", "React"},
			CertificationWebsite:    "https://www.coursera.org/professional-certificates/meta-front-end-developer",
		},
		{
			CertificationName:       "NISM Series V-A: Mutual Fund Distributors",
			CertificationProvider:   "NISM",
			CertificationCategory:   "Finance",
			CertificationLevel:      CertificationLevelIntermediate,
			CertificationDuration:   "2 months",
			CertificationPriceRange: "Under 5,000 INR",
			CertificationSkills:     pq.StringArray{"Mutual Funds", "Financial Planning"},
			CertificationWebsite:    "https://www.nism.ac.in",
		},
		{
			CertificationName:       "Adobe Certified Professional: Graphic Design",
			CertificationProvider:   "Adobe",
			CertificationCategory:   "Design",
			CertificationLevel:      CertificationLevelIntermediate,
			CertificationDuration:   "4 months",
			CertificationPriceRange: "10,000-20,000 INR",
			CertificationSkills:     pq.StringArray{"Photoshop", "Illustrator", "Typography"},
			CertificationWebsite:    "https://certifiedprofessional.adobe.com",
		},
		{
			CertificationName:       "Cisco Certified Network Associate",
			CertificationProvider:   "Cisco",
			CertificationCategory:   "Networking",
			CertificationLevel:      CertificationLevelAdvanced,
			CertificationDuration:   "6 months",
			CertificationPriceRange: "20,000-30,000 INR",
			CertificationSkills:     pq.StringArray{"Routing", "Switching", "Network Security"},
			CertificationWebsite:    "https://www.cisco.com/c/en/us/training-events/training-certifications/certifications/associate/ccna.html",
		},
	}
	return db.Create(&rows).Error
}
