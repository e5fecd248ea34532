package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is the issued participation document plus its metadata.
// At most one exists per (event, volunteer) pair.
type Certificate struct {
	gorm.Model
	EventID      uint   `json:"event_id" gorm:"uniqueIndex:idx_cert_event_volunteer"`
	VolunteerID  uint   `json:"volunteer_id" gorm:"uniqueIndex:idx_cert_event_volunteer"`
	EventTitle   string `json:"event_title"`
	Hours        float64 `json:"hours"`
	HoursText    string  `json:"hours_text"`
	Rating       int     `json:"rating"`
	SerialNumber string  `json:"serial_number" gorm:"uniqueIndex"`
	IssuedAt     time.Time `json:"issued_at"`
	DocumentURL  string    `json:"document_url"`
}
