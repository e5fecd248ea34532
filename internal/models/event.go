package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	EventStatusUpcoming  = "upcoming"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

type Event struct {
	gorm.Model
	Title         string `gorm:"not null"`
	Description   string
	Location      string
	StartTime     time.Time
	EndTime       time.Time
	OrganizerID   uint
	Organizer     User `gorm:"foreignKey:OrganizerID"`
	MaxVolunteers int  `gorm:"not null"`
	Status        string `gorm:"default:'upcoming'"`
	Approved      bool

	// AttendanceLocked flips to true exactly once, when finalization
	// completes. No attendance or finalize call succeeds afterwards.
	AttendanceLocked    bool
	TotalVolunteerHours float64
	TotalRegistrations  int

	Registrations []Registration `gorm:"foreignKey:EventID"`
}

// ApprovedVolunteerIDs returns the ids of volunteers whose registration is
// currently approved. Requires Registrations to be loaded.
func (e *Event) ApprovedVolunteerIDs() []uint {
	var ids []uint
	for _, r := range e.Registrations {
		if r.Status == RegistrationStatusApproved {
			ids = append(ids, r.VolunteerID)
		}
	}
	return ids
}

// RegistrationFor returns the registration for the given volunteer, or nil.
// Requires Registrations to be loaded.
func (e *Event) RegistrationFor(volunteerID uint) *Registration {
	for i := range e.Registrations {
		if e.Registrations[i].VolunteerID == volunteerID {
			return &e.Registrations[i]
		}
	}
	return nil
}

// ScheduledHours is the planned event duration in hours, clamped to 0 when
// the schedule is missing or inverted. Used as the fallback when a
// registration's worked-hours text cannot be parsed.
func (e *Event) ScheduledHours() float64 {
	if e.StartTime.IsZero() || e.EndTime.IsZero() {
		return 0
	}
	hours := e.EndTime.Sub(e.StartTime).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}
