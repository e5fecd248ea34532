package service

import (
	"context"
	"time"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/notifier"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FinalizeFailure names a volunteer whose certificate could not be
// produced in this run. Their hours were not applied; re-invoking Finalize
// retries exactly these volunteers.
type FinalizeFailure struct {
	VolunteerID uint   `json:"volunteer_id"`
	Reason      string `json:"reason"`
}

type FinalizeResult struct {
	EventID             uint              `json:"event_id"`
	Locked              bool              `json:"locked"`
	HoursAdded          float64           `json:"hours_added"`
	VolunteersProcessed int               `json:"volunteers_processed"`
	CertificatesIssued  int               `json:"certificates_issued"`
	Failed              []FinalizeFailure `json:"failed,omitempty"`
}

// Finalize converts marked attendance into volunteer hours, impact score
// and certificates, then locks attendance. Per volunteer, the aggregate
// increments and the certificate-generated flag commit in one transaction,
// so re-invoking after a partial failure never double-counts: volunteers
// already flagged are skipped. The lock is set only when every eligible
// volunteer was processed cleanly; otherwise the failures are reported and
// the event stays open for a retry.
func (s *Service) Finalize(ctx context.Context, actor *models.User, eventID uint) (*FinalizeResult, error) {
	unlock := s.locks.acquire(eventID)
	defer unlock()

	db := s.db.WithContext(ctx)
	event, err := eventByID(db, eventID)
	if err != nil {
		return nil, err
	}
	if !canManage(actor, event) {
		return nil, forbidden("only the event organizer can finalize the event")
	}
	if event.AttendanceLocked {
		return nil, alreadyFinalized("event has already been finalized")
	}
	if event.Status != models.EventStatusCompleted {
		if event.Status == models.EventStatusCancelled {
			return nil, invalidState("cannot finalize a cancelled event")
		}
		if err := db.Model(event).Update("status", models.EventStatusCompleted).Error; err != nil {
			return nil, err
		}
		event.Status = models.EventStatusCompleted
	}

	var regs []models.Registration
	err = db.Where("event_id = ? AND status = ? AND present = ?",
		eventID, models.RegistrationStatusApproved, true).
		Preload("Volunteer").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}

	result := &FinalizeResult{EventID: eventID}
	fallback := event.ScheduledHours()
	now := time.Now()

	for i := range regs {
		reg := &regs[i]
		if reg.CertificateGenerated {
			// Processed in a previous run.
			continue
		}

		hours := parseWorkedHours(reg.WorkDuration, fallback)

		displayName := reg.Name
		if displayName == "" {
			displayName = reg.Volunteer.Username
		}

		cert, err := s.stats.FindCertificate(db, eventID, reg.VolunteerID)
		if err != nil {
			return nil, err
		}

		var newCert *models.Certificate
		if cert == nil {
			hoursText := FormatHoursText(hours)
			docURL, err := s.certs.Render(displayName, event.Title, hoursText, now)
			if err != nil {
				s.logger.Error("certificate rendering failed",
					zap.Uint("event_id", eventID),
					zap.Uint("volunteer_id", reg.VolunteerID),
					zap.Error(err))
				result.Failed = append(result.Failed, FinalizeFailure{
					VolunteerID: reg.VolunteerID,
					Reason:      "certificate rendering failed: " + err.Error(),
				})
				continue
			}
			newCert = &models.Certificate{
				EventID:      eventID,
				VolunteerID:  reg.VolunteerID,
				EventTitle:   event.Title,
				Hours:        hours,
				HoursText:    hoursText,
				Rating:       reg.OrganizerRating,
				SerialNumber: uuid.NewString(),
				IssuedAt:     now,
				DocumentURL:  docURL,
			}
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if hours > 0 {
				if err := s.stats.ApplyHours(tx, reg.VolunteerID, hours); err != nil {
					return err
				}
			}
			if newCert != nil {
				if err := s.stats.AppendCertificate(tx, newCert); err != nil {
					return err
				}
			} else if reg.OrganizerRating > 0 && cert.Rating != reg.OrganizerRating {
				if err := s.stats.UpdateCertificateRating(tx, eventID, reg.VolunteerID, reg.OrganizerRating); err != nil {
					return err
				}
			}
			reg.CertificateGenerated = true
			if err := tx.Model(reg).Update("certificate_generated", true).Error; err != nil {
				return err
			}
			return appendHistory(tx, reg)
		})
		if err != nil {
			s.logger.Error("finalization failed for volunteer",
				zap.Uint("event_id", eventID),
				zap.Uint("volunteer_id", reg.VolunteerID),
				zap.Error(err))
			result.Failed = append(result.Failed, FinalizeFailure{
				VolunteerID: reg.VolunteerID,
				Reason:      err.Error(),
			})
			continue
		}

		if hours > 0 {
			result.HoursAdded += hours
		}
		result.VolunteersProcessed++
		if newCert != nil {
			result.CertificatesIssued++
			s.metrics.IncrementCertificate()
		}

		s.publish(reg.Volunteer, notifier.TopicCertificateReady, notifier.Notification{
			EventID:     event.ID,
			EventTitle:  event.Title,
			VolunteerID: reg.VolunteerID,
			Status:      reg.Status,
			Label:       "Your certificate for " + FormatHoursText(hours) + " is ready",
		})
		if reg.OrganizerRating > 0 {
			s.publish(reg.Volunteer, notifier.TopicRatingUpdated, notifier.Notification{
				EventID:     event.ID,
				EventTitle:  event.Title,
				VolunteerID: reg.VolunteerID,
				Status:      reg.Status,
				Label:       "The organizer rated your participation",
			})
		}
	}

	updates := map[string]any{
		"total_volunteer_hours": event.TotalVolunteerHours + result.HoursAdded,
	}
	result.Locked = len(result.Failed) == 0
	if result.Locked {
		updates["attendance_locked"] = true
	}
	if err := db.Model(event).Updates(updates).Error; err != nil {
		return nil, err
	}

	if result.Locked {
		s.metrics.IncrementFinalization()
	}
	return result, nil
}
