package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RegistrationStatusPending   = "pending"
	RegistrationStatusApproved  = "approved"
	RegistrationStatusRejected  = "rejected"
	RegistrationStatusCancelled = "cancelled"
)

// ApplicantFields is the volunteer's snapshot captured at apply time. A
// reapply after rejection or cancellation overwrites it.
type ApplicantFields struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
	Phone  string `json:"phone"`
}

type Registration struct {
	gorm.Model
	EventID         uint `json:"event_id" gorm:"uniqueIndex:idx_event_volunteer"`
	VolunteerID     uint `json:"volunteer_id" gorm:"uniqueIndex:idx_event_volunteer"`
	Volunteer       User `json:"volunteer" gorm:"foreignKey:VolunteerID"`
	Status          string `json:"status" gorm:"default:'pending'"`
	ApplicantFields `gorm:"embedded"`

	ReviewedAt         *time.Time `json:"reviewed_at"`
	RejectionReason    string     `json:"rejection_reason"`
	CancellationReason string     `json:"cancellation_reason"`

	// Counted tracks whether this volunteer has been counted into the
	// event's TotalRegistrations, so a reject/re-approve cycle does not
	// count twice.
	Counted bool `json:"-"`

	// Attendance fields, meaningful only once the event is completed.
	Present            bool       `json:"present"`
	AttendanceMarkedAt *time.Time `json:"attendance_marked_at"`
	WorkDuration       string     `json:"work_duration"`

	// CertificateGenerated doubles as the "hours applied" guard: it is set
	// in the same transaction as the volunteer aggregate increments, so a
	// finalize retry skips this registration entirely.
	CertificateGenerated bool `json:"certificate_generated"`

	OrganizerRating   int    `json:"organizer_rating"`
	VolunteerRating   int    `json:"volunteer_rating"`
	VolunteerFeedback string `json:"volunteer_feedback"`
}

// Active reports whether the registration currently occupies the volunteer's
// single slot for the event (a new apply must fail with a conflict).
func (r *Registration) Active() bool {
	return r.Status == RegistrationStatusPending || r.Status == RegistrationStatusApproved
}

// StatusLabel is the human label carried in notifications.
func StatusLabel(status string) string {
	switch status {
	case RegistrationStatusPending:
		return "Application received"
	case RegistrationStatusApproved:
		return "Application approved"
	case RegistrationStatusRejected:
		return "Application rejected"
	case RegistrationStatusCancelled:
		return "Registration cancelled"
	default:
		return status
	}
}
