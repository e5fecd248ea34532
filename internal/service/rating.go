package service

import (
	"context"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/notifier"
	"gorm.io/gorm"
)

// RateVolunteer stores the organizer's 1–5 rating of a volunteer who was
// present. Re-rating is allowed and replaces the previous value; an issued
// certificate is kept in sync.
func (s *Service) RateVolunteer(ctx context.Context, actor *models.User, eventID, volunteerID uint, rating int) error {
	if rating < 1 || rating > 5 {
		return validation("rating must be between 1 and 5")
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
		if !canManage(actor, event) {
			return forbidden("only the event organizer can rate volunteers")
		}
		if event.Status != models.EventStatusCompleted {
			return invalidState("volunteers can only be rated once the event is completed")
		}

		reg, err = registrationFor(tx, eventID, volunteerID)
		if err != nil {
			return err
		}
		if reg == nil {
			return notFound("registration not found")
		}
		if !reg.Present {
			return invalidState("cannot rate a volunteer who was not marked present")
		}

		reg.OrganizerRating = rating
		if err := tx.Save(reg).Error; err != nil {
			return err
		}

		cert, err := s.stats.FindCertificate(tx, eventID, volunteerID)
		if err != nil {
			return err
		}
		if cert != nil {
			if err := s.stats.UpdateCertificateRating(tx, eventID, volunteerID, rating); err != nil {
				return err
			}
		}
		return appendHistory(tx, reg)
	})
	if err != nil {
		return err
	}

	if volunteer, err := s.userByID(volunteerID); err == nil {
		s.publish(volunteer, notifier.TopicRatingUpdated, notifier.Notification{
			EventID:     event.ID,
			EventTitle:  event.Title,
			VolunteerID: volunteerID,
			Status:      reg.Status,
			Label:       "The organizer rated your participation",
		})
	}
	return nil
}

// SubmitFeedback records the volunteer's one-time rating and feedback for
// the event, once attendance is locked.
func (s *Service) SubmitFeedback(ctx context.Context, volunteer *models.User, eventID uint, rating int, text string) error {
	if rating < 1 || rating > 5 {
		return validation("rating must be between 1 and 5")
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
		if !event.AttendanceLocked {
			return invalidState("feedback opens once the event has been finalized")
		}

		reg, err = registrationFor(tx, eventID, volunteer.ID)
		if err != nil {
			return err
		}
		if reg == nil {
			return notFound("registration not found")
		}
		if !reg.Present {
			return invalidState("feedback is limited to volunteers who attended")
		}
		if reg.VolunteerRating != 0 || reg.VolunteerFeedback != "" {
			return alreadySubmitted("feedback has already been submitted for this event")
		}

		reg.VolunteerRating = rating
		reg.VolunteerFeedback = text
		if err := tx.Save(reg).Error; err != nil {
			return err
		}
		return appendHistory(tx, reg)
	})
	if err != nil {
		return err
	}

	if organizer, err := s.userByID(event.OrganizerID); err == nil {
		s.publish(organizer, notifier.TopicFeedbackSubmitted, notifier.Notification{
			EventID:     event.ID,
			EventTitle:  event.Title,
			VolunteerID: volunteer.ID,
			Status:      reg.Status,
			Label:       "A volunteer submitted feedback for your event",
		})
	}
	return nil
}
