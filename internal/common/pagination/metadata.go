package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Page            int   `json:"page"`            // Current page number (1-based)
	TotalPages      int   `json:"totalPages"`      // Calculated total number of pages
	TotalCount      int64 `json:"totalCount"`      // Total number of items across all pages
	HasNextPage     bool  `json:"hasNextPage"`     // Whether a page after the current one exists
	HasPreviousPage bool  `json:"hasPreviousPage"` // Whether a page before the current one exists
	Limit           int   `json:"limit"`           // Items per page
}

// Describe derives display metadata from a total row count and the already
// validated page/limit pair. It performs no validation of its own; callers
// are expected to have gone through ParseQuery first.
func Describe(total int64, page, limit int) Metadata {
	totalPages := CalculateTotalPages(total, limit)
	return Metadata{
		Page:            page,
		TotalPages:      totalPages,
		TotalCount:      total,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
		Limit:           limit,
	}
}
