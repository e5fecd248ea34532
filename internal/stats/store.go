package stats

import (
	"errors"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
	"gorm.io/gorm"
)

// Store owns the per-volunteer aggregates and issued certificates. The
// finalization engine is the only writer; mutating methods take the caller's
// transaction so an aggregate update commits atomically with the
// registration flag that guards it.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

// ApplyHours credits one completed event: hours, impact score (hours * 10)
// and the completed-event count, all floored at zero.
func (s *Store) ApplyHours(tx *gorm.DB, volunteerID uint, hours float64) error {
	var vs models.VolunteerStats
	err := tx.Where(models.VolunteerStats{VolunteerID: volunteerID}).FirstOrInit(&vs).Error
	if err != nil {
		return err
	}

	vs.TotalHours += hours
	if vs.TotalHours < 0 {
		vs.TotalHours = 0
	}
	vs.ImpactScore += hours * 10
	if vs.ImpactScore < 0 {
		vs.ImpactScore = 0
	}
	vs.CompletedEvents++

	return tx.Save(&vs).Error
}

// AppendCertificate records an issued certificate. The unique index on
// (event_id, volunteer_id) makes duplicates a hard error rather than a
// silent second document.
func (s *Store) AppendCertificate(tx *gorm.DB, cert *models.Certificate) error {
	return tx.Create(cert).Error
}

// FindCertificate returns the certificate for the pair, or nil when none
// has been issued.
func (s *Store) FindCertificate(db *gorm.DB, eventID, volunteerID uint) (*models.Certificate, error) {
	var cert models.Certificate
	err := db.Where("event_id = ? AND volunteer_id = ?", eventID, volunteerID).First(&cert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// UpdateCertificateRating syncs an organizer re-rating onto the issued
// certificate, if one exists.
func (s *Store) UpdateCertificateRating(tx *gorm.DB, eventID, volunteerID uint, rating int) error {
	return tx.Model(&models.Certificate{}).
		Where("event_id = ? AND volunteer_id = ?", eventID, volunteerID).
		Update("rating", rating).Error
}

// Get returns the volunteer's aggregates, zero-valued when nothing has been
// finalized for them yet.
func (s *Store) Get(db *gorm.DB, volunteerID uint) (*models.VolunteerStats, error) {
	var vs models.VolunteerStats
	err := db.Where("volunteer_id = ?", volunteerID).First(&vs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.VolunteerStats{VolunteerID: volunteerID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &vs, nil
}

// Certificates lists a volunteer's issued certificates, newest first.
func (s *Store) Certificates(db *gorm.DB, volunteerID uint) ([]models.Certificate, error) {
	var certs []models.Certificate
	err := db.Where("volunteer_id = ?", volunteerID).Order("issued_at desc").Find(&certs).Error
	return certs, err
}
