package models

import (
	"gorm.io/gorm"
)

// RegistrationHistory is an append-only snapshot written on every ledger
// transition, in the same transaction as the change itself. It preserves
// superseded applicant snapshots and overwritten ratings.
type RegistrationHistory struct {
	gorm.Model
	RegistrationID  uint   `json:"registration_id"`
	EventID         uint   `json:"event_id"`
	VolunteerID     uint   `json:"volunteer_id"`
	Status          string `json:"status"`
	ApplicantFields `gorm:"embedded"`

	RejectionReason    string `json:"rejection_reason"`
	CancellationReason string `json:"cancellation_reason"`
	Present            bool   `json:"present"`
	WorkDuration       string `json:"work_duration"`
	OrganizerRating    int    `json:"organizer_rating"`
	VolunteerRating    int    `json:"volunteer_rating"`
}

// Snapshot builds a history row from the registration's current state.
func Snapshot(r *Registration) RegistrationHistory {
	return RegistrationHistory{
		RegistrationID:     r.ID,
		EventID:            r.EventID,
		VolunteerID:        r.VolunteerID,
		Status:             r.Status,
		ApplicantFields:    r.ApplicantFields,
		RejectionReason:    r.RejectionReason,
		CancellationReason: r.CancellationReason,
		Present:            r.Present,
		WorkDuration:       r.WorkDuration,
		OrganizerRating:    r.OrganizerRating,
		VolunteerRating:    r.VolunteerRating,
	}
}
