package models

import "time"

// SavedRecommendation is a recommendation a user pinned for later
type SavedRecommendation struct {
	ID         string    `json:"id" db:"id"`
	ZoneID     string    `json:"zone_id" db:"zone_id"`
	ZoneName   string    `json:"zone_name" db:"zone_name"`
	EventName  string    `json:"event_name" db:"event_name"`
	TotalScore float64   `json:"total_score" db:"total_score"`
	Notes      string    `json:"notes,omitempty" db:"notes"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}
