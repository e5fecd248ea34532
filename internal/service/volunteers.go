package service

import (
	"context"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
)

// VolunteerStats returns the volunteer's accumulated hours, impact score
// and completed-event count.
func (s *Service) VolunteerStats(ctx context.Context, volunteerID uint) (*models.VolunteerStats, error) {
	return s.stats.Get(s.db.WithContext(ctx), volunteerID)
}

// VolunteerCertificates lists the volunteer's issued certificates.
func (s *Service) VolunteerCertificates(ctx context.Context, volunteerID uint) ([]models.Certificate, error) {
	return s.stats.Certificates(s.db.WithContext(ctx), volunteerID)
}
