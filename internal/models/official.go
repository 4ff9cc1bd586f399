package models

import "time"

// MunicipalOfficial types order the directory listing (head first).
const (
	OfficialTypeHead    = "head"
	OfficialTypeVice    = "vice"
	OfficialTypeOfficer = "officer"
)

type MunicipalOfficial struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Type      string    `json:"type"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

type BarangayOfficial struct {
	ID            int64     `json:"id"`
	BarangayName  string    `json:"barangay_name"`
	PresidentName string    `json:"president_name"`
	Position      string    `json:"position"`
	Image         *string   `json:"image"`
	CreatedAt     time.Time `json:"created_at"`
}
