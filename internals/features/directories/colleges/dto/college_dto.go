package dto

// CollegeFilter carries the query-string filters for the directory listing.
// All fields are optional; empty values mean no filter.
type CollegeFilter struct {
	Location   string `query:"location"`
	Branch     string `query:"branch"`
	DegreeType string `query:"degree_type"`
	Type       string `query:"college_type"`
	Search     string `query:"search"`
}
