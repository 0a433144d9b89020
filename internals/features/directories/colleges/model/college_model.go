package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CollegeModel is a row in the browsable college directory.
type CollegeModel struct {
	CollegeID          uuid.UUID      `gorm:"column:college_id;type:uuid;primaryKey" json:"college_id"`
	CollegeName        string         `gorm:"column:college_name;size:200;not null;index:idx_colleges_name" json:"college_name"`
	CollegeLocation    string         `gorm:"column:college_location;size:120;not null;index:idx_colleges_location" json:"college_location"`
	CollegeType        string         `gorm:"column:college_type;size:30;not null" json:"college_type"`
	CollegeBranches    pq.StringArray `gorm:"column:college_branches;type:text[]" json:"college_branches"`
	CollegeDegreeTypes pq.StringArray `gorm:"column:college_degree_types;type:text[]" json:"college_degree_types"`
	CollegeRating      float64        `gorm:"column:college_rating;not null;default:0" json:"college_rating"`
	CollegeFeesRange   string         `gorm:"column:college_fees_range;size:60" json:"college_fees_range"`
	CollegeWebsite     string         `gorm:"column:college_website;size:255" json:"college_website"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CollegeModel) TableName() string { return "colleges" }

func (m *CollegeModel) BeforeCreate(tx *gorm.DB) error {
	if m.CollegeID == uuid.Nil {
		m.CollegeID = uuid.New()
	}
	return nil
}

const (
	CollegeTypeGovernment = "GOVERNMENT"
	CollegeTypePrivate    = "PRIVATE"
	CollegeTypeDeemed     = "DEEMED"
)

// SeedIfEmpty loads the starter directory on a fresh database.
func SeedIfEmpty(db *gorm.DB) error {
	var count int64
	if err := db.Model(&CollegeModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := []CollegeModel{
		{
			CollegeName:        "Indian Institute of Technology Bombay",
			CollegeLocation:    "Mumbai",
			CollegeType:        CollegeTypeGovernment,
			CollegeBranches:    pq.StringArray{"Computer Science", "Mechanical Engineering", "Electrical Engineering"},
			CollegeDegreeTypes: pq.StringArray{"B.Tech", "M.Tech", "PhD"},
			CollegeRating:      4.8,
			CollegeFeesRange:   "2-3 Lakhs/year",
			CollegeWebsite:     "https://www.iitb.ac.in",
		},
		{
			CollegeName:        "Indian Institute of Technology Delhi",
			CollegeLocation:    "Delhi",
			CollegeType:        CollegeTypeGovernment,
			CollegeBranches:    pq.StringArray{"Computer Science", "Civil Engineering", "Chemical Engineering"},
			CollegeDegreeTypes: pq.StringArray{"B.Tech", "M.Tech", "PhD"},
			CollegeRating:      4.8,
			CollegeFeesRange:   "2-3 Lakhs/year",
			CollegeWebsite:     "https://home.iitd.ac.in",
		},
		{
			CollegeName:        "All India Institute of Medical Sciences",
			CollegeLocation:    "Delhi",
			CollegeType:        CollegeTypeGovernment,
			CollegeBranches:    pq.StringArray{"Medicine", "Nursing", "Biotechnology"},
			CollegeDegreeTypes: pq.StringArray{"MBBS", "B.Sc", "MD"},
			CollegeRating:      4.9,
			CollegeFeesRange:   "Under 1 Lakh/year",
			CollegeWebsite:     "https://www.aiims.edu",
		},
		{
			CollegeName:        "St. Stephen's College",
			CollegeLocation:    "Delhi",
			CollegeType:        CollegeTypeGovernment,
			CollegeBranches:    pq.StringArray{"Economics", "English", "Physics", "History"},
			CollegeDegreeTypes: pq.StringArray{"B.A", "B.Sc", "M.A"},
			CollegeRating:      4.6,
			CollegeFeesRange:   "Under 1 Lakh/year",
			CollegeWebsite:     "https://www.ststephens.edu",
		},
		{
			CollegeName:        "Birla Institute of Technology and Science",
			CollegeLocation:    "Pilani",
			CollegeType:        CollegeTypePrivate,
			CollegeBranches:    pq.StringArray{"Computer Science", "Electronics", "Pharmacy"},
			CollegeDegreeTypes: pq.StringArray{"B.E", "B.Pharm", "M.E"},
			CollegeRating:      4.5,
			CollegeFeesRange:   "4-5 Lakhs/year",
			CollegeWebsite:     "https://www.bits-pilani.ac.in",
		},
		{
			CollegeName:        "National Law School of India University",
			CollegeLocation:    "Bangalore",
			CollegeType:        CollegeTypeGovernment,
			CollegeBranches:    pq.StringArray{"Law", "Public Policy"},
			CollegeDegreeTypes: pq.StringArray{"B.A LL.B", "LL.M"},
			CollegeRating:      4.7,
			CollegeFeesRange:   "2-3 Lakhs/year",
			CollegeWebsite:     "https://www.nls.ac.in",
		},
		{
			CollegeName:        "Christ University",
			CollegeLocation:    "Bangalore",
			CollegeType:        CollegeTypeDeemed,
			CollegeBranches:    pq.StringArray{"Commerce", "Management", "Psychology", "Computer Science"},
			CollegeDegreeTypes: pq.StringArray{"B.Com", "BBA", "B.Sc", "MBA"},
			CollegeRating:      4.3,
			CollegeFeesRange:   "1-2 Lakhs/year",
			CollegeWebsite:     "https://christuniversity.in",
		},
		{
			CollegeName:        "National Institute of Design",
			CollegeLocation:    "Ahmedabad",
			CollegeType:        CollegeTypeGovernment,
			CollegeBranches:    pq.StringArray{"Industrial Design", "Communication Design", "Textile Design"},
			CollegeDegreeTypes: pq.StringArray{"B.Des", "M.Des"},
			CollegeRating:      4.6,
			CollegeFeesRange:   "3-4 Lakhs/year",
			CollegeWebsite:     "https://www.nid.edu",
		},
	}
	return db.Create(&rows).Error
}
