package dtos

import "github.com/reinzjustinedagang/osca-backend/internal/models"

type CreatedResponse struct {
	Message  string `json:"message"`
	InsertID int64  `json:"insertId"`
}

// CitizenPage is the paginated listing payload. TotalPages is always
// ceil(total/limit); HasNextPage is page*limit < total.
type CitizenPage struct {
	Total          int64                   `json:"total"`
	Page           int                     `json:"page"`
	Limit          int                     `json:"limit"`
	SeniorCitizens []*models.SeniorCitizen `json:"seniorCitizens"`
	TotalPages     int                     `json:"totalPages"`
	HasNextPage    bool                    `json:"hasNextPage"`
	HasPrevPage    bool                    `json:"hasPrevPage"`
}
