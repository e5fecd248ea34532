package service

import (
	"context"
	"time"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/notifier"
	"gorm.io/gorm"
)

// ApplicantInput is the applicant snapshot captured at apply time.
type ApplicantInput struct {
	Name   string `validate:"required"`
	Age    int    `validate:"required,gte=1,lte=120"`
	Gender string `validate:"omitempty,oneof=male female other"`
	Phone  string `validate:"required"`
}

// Apply creates a pending registration for the volunteer, or resets an old
// rejected/cancelled one back to pending with a fresh applicant snapshot.
// A registration that is already pending or approved is a conflict.
func (s *Service) Apply(ctx context.Context, volunteer *models.User, eventID uint, in ApplicantInput) (*models.Registration, error) {
	if err := s.validate.Struct(&in); err != nil {
		return nil, validation("invalid applicant details: %v", err)
	}

	unlock := s.locks.acquire(eventID)
	defer unlock()

	var (
		reg   models.Registration
		event *models.Event
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		event, err = eventByID(tx, eventID)
		if err != nil {
			return err
		}
		if !event.Approved {
			return invalidState("event is not open for registration")
		}
		if event.Status != models.EventStatusUpcoming {
			return invalidState("cannot register for a %s event", event.Status)
		}
		if !event.StartTime.IsZero() && event.StartTime.Before(time.Now()) {
			return invalidState("event date has already passed")
		}

		existing, err := registrationFor(tx, eventID, volunteer.ID)
		if err != nil {
			return err
		}

		snapshot := models.ApplicantFields{
			Name:   in.Name,
			Age:    in.Age,
			Gender: in.Gender,
			Phone:  in.Phone,
		}

		if existing != nil {
			if existing.Active() {
				return conflict("you have already applied to this event")
			}
			// Reapply: refresh the snapshot and clear everything from the
			// previous cycle.
			existing.ApplicantFields = snapshot
			existing.Status = models.RegistrationStatusPending
			existing.ReviewedAt = nil
			existing.RejectionReason = ""
			existing.CancellationReason = ""
			existing.Present = false
			existing.AttendanceMarkedAt = nil
			existing.WorkDuration = ""
			existing.CreatedAt = time.Now()
			if err := tx.Save(existing).Error; err != nil {
				return err
			}
			reg = *existing
		} else {
			reg = models.Registration{
				EventID:         eventID,
				VolunteerID:     volunteer.ID,
				Status:          models.RegistrationStatusPending,
				ApplicantFields: snapshot,
			}
			if err := tx.Create(&reg).Error; err != nil {
				return err
			}
		}

		return appendHistory(tx, &reg)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementTransition(reg.Status)
	s.notifyRegistration(event, *volunteer, &reg)
	return &reg, nil
}

// ApproveRegistration moves a registration to approved, enforcing the
// capacity invariant under the event lock.
func (s *Service) ApproveRegistration(ctx context.Context, actor *models.User, eventID, volunteerID uint) error {
	unlock := s.locks.acquire(eventID)
	defer unlock()

	var (
		reg   *models.Registration
		event *models.Event
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		event, err = eventByID(tx, eventID)
		if err != nil {
			return err
		}
		if !canManage(actor, event) {
			return forbidden("only the event organizer can approve registrations")
		}

		reg, err = registrationFor(tx, eventID, volunteerID)
		if err != nil {
			return err
		}
		if reg == nil {
			return notFound("registration not found")
		}
		if reg.Status == models.RegistrationStatusApproved {
			return invalidState("registration is already approved")
		}
		if reg.Status == models.RegistrationStatusCancelled {
			return invalidState("cannot approve a cancelled registration")
		}

		count, err := approvedCount(tx, eventID)
		if err != nil {
			return err
		}
		if count >= int64(event.MaxVolunteers) {
			return capacityExceeded("event is full: %d of %d volunteer slots taken", count, event.MaxVolunteers)
		}

		now := time.Now()
		reg.Status = models.RegistrationStatusApproved
		reg.ReviewedAt = &now
		reg.RejectionReason = ""
		if !reg.Counted {
			reg.Counted = true
			if err := tx.Model(event).Update("total_registrations", gorm.Expr("total_registrations + 1")).Error; err != nil {
				return err
			}
		}
		if err := tx.Save(reg).Error; err != nil {
			return err
		}
		return appendHistory(tx, reg)
	})
	if err != nil {
		return err
	}

	s.metrics.IncrementTransition(reg.Status)
	if volunteer, err := s.userByID(volunteerID); err == nil {
		s.notifyRegistration(event, volunteer, reg)
	}
	return nil
}

// RejectRegistration rejects a pending or approved registration, recording
// the reason and review time. Rejecting an approved registration frees its
// capacity slot.
func (s *Service) RejectRegistration(ctx context.Context, actor *models.User, eventID, volunteerID uint, reason string) error {
	unlock := s.locks.acquire(eventID)
	defer unlock()

	var (
		reg   *models.Registration
		event *models.Event
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		event, err = eventByID(tx, eventID)
		if err != nil {
			return err
		}
		if !canManage(actor, event) {
			return forbidden("only the event organizer can reject registrations")
		}

		reg, err = registrationFor(tx, eventID, volunteerID)
		if err != nil {
			return err
		}
		if reg == nil {
			return notFound("registration not found")
		}
		if reg.Status == models.RegistrationStatusRejected {
			return invalidState("registration is already rejected")
		}
		if reg.Status == models.RegistrationStatusCancelled {
			return invalidState("cannot reject a cancelled registration")
		}

		now := time.Now()
		reg.Status = models.RegistrationStatusRejected
		reg.RejectionReason = reason
		reg.ReviewedAt = &now
		if err := tx.Save(reg).Error; err != nil {
			return err
		}
		return appendHistory(tx, reg)
	})
	if err != nil {
		return err
	}

	s.metrics.IncrementTransition(reg.Status)
	if volunteer, err := s.userByID(volunteerID); err == nil {
		s.notifyRegistration(event, volunteer, reg)
	}
	return nil
}

// CancelRegistration is the volunteer-initiated withdrawal. It requires a
// meaningful reason and is barred once the event completes or a certificate
// has been issued.
func (s *Service) CancelRegistration(ctx context.Context, volunteer *models.User, eventID uint, reason string) error {
	if len(reason) < 10 {
		return validation("cancellation reason must be at least 10 characters")
	}

	unlock := s.locks.acquire(eventID)
	defer unlock()

	var (
		reg   *models.Registration
		event *models.Event
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		event, err = eventByID(tx, eventID)
		if err != nil {
			return err
		}
		if event.Status == models.EventStatusCompleted {
			return invalidState("cannot cancel after the event has completed")
		}

		reg, err = registrationFor(tx, eventID, volunteer.ID)
		if err != nil {
			return err
		}
		if reg == nil {
			return notFound("registration not found")
		}
		if reg.Status == models.RegistrationStatusCancelled {
			return invalidState("registration is already cancelled")
		}
		if reg.Status == models.RegistrationStatusRejected {
			return invalidState("cannot cancel a rejected registration")
		}
		if reg.CertificateGenerated {
			return invalidState("cannot cancel after a certificate has been issued")
		}

		if reg.Status == models.RegistrationStatusApproved && reg.Counted {
			reg.Counted = false
			if err := tx.Model(event).Update("total_registrations", gorm.Expr("MAX(total_registrations - 1, 0)")).Error; err != nil {
				return err
			}
		}
		reg.Status = models.RegistrationStatusCancelled
		reg.CancellationReason = reason
		if err := tx.Save(reg).Error; err != nil {
			return err
		}
		return appendHistory(tx, reg)
	})
	if err != nil {
		return err
	}

	s.metrics.IncrementTransition(reg.Status)
	s.notifyRegistration(event, *volunteer, reg)
	return nil
}

// RemoveRegistration is the organizer-initiated removal. An approved entry
// is demoted to rejected (keeping the audit trail); anything else is
// deleted outright. Disallowed once the event completed or a certificate
// exists.
func (s *Service) RemoveRegistration(ctx context.Context, actor *models.User, eventID, volunteerID uint) error {
	unlock := s.locks.acquire(eventID)
	defer unlock()

	var (
		reg     *models.Registration
		event   *models.Event
		demoted bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		event, err = eventByID(tx, eventID)
		if err != nil {
			return err
		}
		if !canManage(actor, event) {
			return forbidden("only the event organizer can remove registrations")
		}
		if event.Status == models.EventStatusCompleted {
			return invalidState("cannot remove registrations after the event has completed")
		}

		reg, err = registrationFor(tx, eventID, volunteerID)
		if err != nil {
			return err
		}
		if reg == nil {
			return notFound("registration not found")
		}
		if reg.CertificateGenerated {
			return invalidState("cannot remove a registration with an issued certificate")
		}

		if reg.Status == models.RegistrationStatusApproved {
			now := time.Now()
			reg.Status = models.RegistrationStatusRejected
			reg.RejectionReason = "Removed from the event by the organizer"
			reg.ReviewedAt = &now
			demoted = true
			if err := tx.Save(reg).Error; err != nil {
				return err
			}
			return appendHistory(tx, reg)
		}

		// A hard delete, so the volunteer can apply afresh later without
		// tripping the (event, volunteer) unique index.
		return tx.Unscoped().Delete(reg).Error
	})
	if err != nil {
		return err
	}

	if demoted {
		s.metrics.IncrementTransition(reg.Status)
	}
	if volunteer, err := s.userByID(volunteerID); err == nil {
		if demoted {
			s.notifyRegistration(event, volunteer, reg)
		} else {
			s.notifyParties(event, volunteer, notifier.TopicRegistrationUpdated, notifier.Notification{
				EventID:     event.ID,
				EventTitle:  event.Title,
				VolunteerID: volunteerID,
				Status:      "removed",
				Label:       "Registration removed by the organizer",
			})
		}
	}
	return nil
}

// ListOwnRegistrations returns the volunteer's registrations across events.
func (s *Service) ListOwnRegistrations(ctx context.Context, volunteer *models.User) ([]models.Registration, error) {
	var regs []models.Registration
	err := s.db.WithContext(ctx).
		Where("volunteer_id = ?", volunteer.ID).
		Order("created_at desc").
		Find(&regs).Error
	return regs, err
}

func (s *Service) notifyRegistration(event *models.Event, volunteer models.User, reg *models.Registration) {
	s.notifyParties(event, volunteer, notifier.TopicRegistrationUpdated, notifier.Notification{
		EventID:     event.ID,
		EventTitle:  event.Title,
		VolunteerID: reg.VolunteerID,
		Status:      reg.Status,
		Label:       models.StatusLabel(reg.Status),
	})
}
