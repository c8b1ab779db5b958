// Package feed provides HTTP handlers for feed endpoints.
// It includes paginated listing per user, the public feed set, the
// unfiltered listing, and internal ingestion.
package feed

import (
	"time"

	"profeed/internal/common/pagination"
	"profeed/internal/domain/entity"
)

// DTO represents the JSON structure for feed data transfer.
type DTO struct {
	ID               string    `json:"id" example:"b4f9c1de-22aa-4c21-9f0e-8d1d2f3a4b5c"`
	UserID           string    `json:"userId" example:"usr_01HZXK3T"`
	Source           string    `json:"source" example:"tmz.com"`
	Title            string    `json:"title" example:"Release notes roundup"`
	URL              string    `json:"url" example:"https://www.tmz.com/2026/01/01/story"`
	Content          string    `json:"content" example:"A short summary of the story."`
	ImageFirebaseURL *string   `json:"imageFirebaseUrl"`
	Timestamp        time.Time `json:"timestamp" example:"2026-01-15T09:30:00Z"`
}

func toDTO(f *entity.Feed) DTO {
	return DTO{
		ID:               f.ID,
		UserID:           f.UserID,
		Source:           f.Source,
		Title:            f.Title,
		URL:              f.URL,
		Content:          f.Content,
		ImageFirebaseURL: f.ImageURL,
		Timestamp:        f.CreatedAt,
	}
}

func toDTOs(feeds []*entity.Feed) []DTO {
	dtos := make([]DTO, 0, len(feeds))
	for _, f := range feeds {
		dtos = append(dtos, toDTO(f))
	}
	return dtos
}

type listResponse struct {
	Success    bool                `json:"success"`
	Feeds      []DTO               `json:"feeds"`
	Pagination pagination.Metadata `json:"pagination"`
}

type ingestResponse struct {
	Success bool `json:"success"`
	Feed    DTO  `json:"feed"`
}
