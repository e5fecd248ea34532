package service

import (
	"context"
	"strings"
	"time"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/notifier"
	"gorm.io/gorm"
)

// MarkAttendance records whether an approved volunteer showed up. It may be
// re-invoked to correct a mistake for as long as the event is completed and
// attendance is not locked.
func (s *Service) MarkAttendance(ctx context.Context, actor *models.User, eventID, volunteerID uint, present bool, workDuration string) error {
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
			return forbidden("only the event organizer can mark attendance")
		}
		if event.Status != models.EventStatusCompleted {
			return invalidState("attendance can only be marked once the event is completed")
		}
		if event.AttendanceLocked {
			return alreadyFinalized("attendance is locked for this event")
		}

		reg, err = registrationFor(tx, eventID, volunteerID)
		if err != nil {
			return err
		}
		if reg == nil {
			return notFound("registration not found")
		}
		if reg.Status != models.RegistrationStatusApproved {
			return invalidState("attendance can only be marked for approved volunteers")
		}
		if present && strings.TrimSpace(workDuration) == "" {
			return validation("work duration is required when marking a volunteer present")
		}

		reg.Present = present
		if present {
			now := time.Now()
			reg.AttendanceMarkedAt = &now
			reg.WorkDuration = workDuration
		} else {
			reg.AttendanceMarkedAt = nil
			reg.WorkDuration = ""
		}
		if err := tx.Save(reg).Error; err != nil {
			return err
		}
		return appendHistory(tx, reg)
	})
	if err != nil {
		return err
	}

	label := "Marked absent"
	if present {
		label = "Marked present (" + reg.WorkDuration + ")"
	}
	if volunteer, err := s.userByID(volunteerID); err == nil {
		s.notifyParties(event, volunteer, notifier.TopicAttendanceUpdated, notifier.Notification{
			EventID:     event.ID,
			EventTitle:  event.Title,
			VolunteerID: volunteerID,
			Status:      reg.Status,
			Label:       label,
		})
	}
	return nil
}
