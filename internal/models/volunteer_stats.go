package models

import (
	"gorm.io/gorm"
)

// VolunteerStats holds per-volunteer aggregates. Written only by the
// finalization engine; everything else reads.
type VolunteerStats struct {
	gorm.Model
	VolunteerID     uint    `json:"volunteer_id" gorm:"uniqueIndex"`
	TotalHours      float64 `json:"total_hours"`
	ImpactScore     float64 `json:"impact_score"`
	CompletedEvents int     `json:"completed_events"`
}
