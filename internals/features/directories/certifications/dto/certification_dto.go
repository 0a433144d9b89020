package dto

// CertificationFilter carries the query-string filters for the directory
// listing. Empty values mean no filter.
type CertificationFilter struct {
	Category   string `query:"category"`
	Level      string `query:"level"`
	Provider   string `query:"provider"`
	PriceRange string `query:"price_range"`
	Search     string `query:"search"`
}
