// Package profile provides HTTP handlers for profile endpoints.
// It includes handlers for creating a profile and fetching one by user ID
// or phone number.
package profile

import (
	"time"

	"profeed/internal/domain/entity"
)

// DTO represents the JSON structure for profile data transfer.
// Only public profile fields are exposed; join artifacts from phone-number
// lookups never appear here.
type DTO struct {
	UserID         string    `json:"userId" example:"usr_01HZXK3T"`
	Headline       string    `json:"headline" example:"Senior Backend Engineer"`
	Summary        string    `json:"summary" example:"Ten years building distributed systems."`
	Skills         []string  `json:"skills" example:"Go,PostgreSQL"`
	Certifications []string  `json:"certifications"`
	Languages      []string  `json:"languages" example:"English,Japanese"`
	Score          float64   `json:"score" example:"87.5"`
	ShareURL       string    `json:"shareUrl" example:"https://profiles.example.com/usr_01HZXK3T"`
	CreatedAt      time.Time `json:"createdAt" example:"2026-01-15T09:30:00Z"`
}

func toDTO(p *entity.Profile) DTO {
	return DTO{
		UserID:         p.UserID,
		Headline:       p.Headline,
		Summary:        p.Summary,
		Skills:         p.Skills,
		Certifications: p.Certifications,
		Languages:      p.Languages,
		Score:          p.Score,
		ShareURL:       p.ShareURL,
		CreatedAt:      p.CreatedAt,
	}
}

type profileResponse struct {
	Success bool `json:"success"`
	Profile DTO  `json:"profile"`
}
