package service

import (
	"context"
	"time"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
)

type CreateEventInput struct {
	Title         string    `validate:"required"`
	Description   string
	Location      string
	StartTime     time.Time `validate:"required"`
	EndTime       time.Time `validate:"required"`
	MaxVolunteers int       `validate:"required,gte=1"`
}

// CreateEvent registers a new event owned by the organizer. Events start
// unapproved and upcoming; an admin approval opens them for registration.
func (s *Service) CreateEvent(ctx context.Context, organizer *models.User, in CreateEventInput) (*models.Event, error) {
	if !organizer.CanOrganize() {
		return nil, forbidden("only organizers can create events")
	}
	if err := s.validate.Struct(&in); err != nil {
		return nil, validation("invalid event: %v", err)
	}
	if !in.EndTime.After(in.StartTime) {
		return nil, validation("event end time must be after start time")
	}

	event := models.Event{
		Title:         in.Title,
		Description:   in.Description,
		Location:      in.Location,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		OrganizerID:   organizer.ID,
		MaxVolunteers: in.MaxVolunteers,
		Status:        models.EventStatusUpcoming,
	}
	if err := s.db.WithContext(ctx).Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// ApproveEvent marks an event as open for registration. Admin only.
func (s *Service) ApproveEvent(ctx context.Context, actor *models.User, eventID uint) error {
	if !actor.IsAdmin() {
		return forbidden("only admins can approve events")
	}

	unlock := s.locks.acquire(eventID)
	defer unlock()

	db := s.db.WithContext(ctx)
	event, err := eventByID(db, eventID)
	if err != nil {
		return err
	}
	if event.Status != models.EventStatusUpcoming {
		return invalidState("cannot approve a %s event", event.Status)
	}
	if event.Approved {
		return invalidState("event is already approved")
	}
	return db.Model(event).Update("approved", true).Error
}

// CompleteEvent transitions an upcoming event to completed, which opens the
// attendance window.
func (s *Service) CompleteEvent(ctx context.Context, actor *models.User, eventID uint) error {
	unlock := s.locks.acquire(eventID)
	defer unlock()

	db := s.db.WithContext(ctx)
	event, err := eventByID(db, eventID)
	if err != nil {
		return err
	}
	if !canManage(actor, event) {
		return forbidden("only the event organizer can complete the event")
	}
	if event.Status != models.EventStatusUpcoming {
		return invalidState("cannot complete a %s event", event.Status)
	}
	return db.Model(event).Update("status", models.EventStatusCompleted).Error
}

// CancelEvent cancels an upcoming event.
func (s *Service) CancelEvent(ctx context.Context, actor *models.User, eventID uint) error {
	unlock := s.locks.acquire(eventID)
	defer unlock()

	db := s.db.WithContext(ctx)
	event, err := eventByID(db, eventID)
	if err != nil {
		return err
	}
	if !canManage(actor, event) {
		return forbidden("only the event organizer can cancel the event")
	}
	if event.Status != models.EventStatusUpcoming {
		return invalidState("cannot cancel a %s event", event.Status)
	}
	return db.Model(event).Update("status", models.EventStatusCancelled).Error
}

// DeleteEvent soft-deletes an event. Deleted events disappear from every
// query and read as not found.
func (s *Service) DeleteEvent(ctx context.Context, actor *models.User, eventID uint) error {
	unlock := s.locks.acquire(eventID)
	defer unlock()

	db := s.db.WithContext(ctx)
	event, err := eventByID(db, eventID)
	if err != nil {
		return err
	}
	if !canManage(actor, event) {
		return forbidden("only the event organizer can delete the event")
	}
	return db.Delete(event).Error
}

// ListOpenEvents returns approved upcoming events, newest first.
func (s *Service) ListOpenEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Where("approved = ? AND status = ?", true, models.EventStatusUpcoming).
		Order("start_time asc").
		Find(&events).Error
	return events, err
}

// ListOwnEvents returns every event the organizer owns, regardless of state.
func (s *Service) ListOwnEvents(ctx context.Context, organizer *models.User) ([]models.Event, error) {
	var events []models.Event
	err := s.db.WithContext(ctx).
		Where("organizer_id = ?", organizer.ID).
		Order("start_time asc").
		Find(&events).Error
	return events, err
}

// GetEvent returns one event. The registration ledger is included only for
// the organizer (or an admin); other callers see the event itself.
func (s *Service) GetEvent(ctx context.Context, actor *models.User, eventID uint) (*models.Event, error) {
	db := s.db.WithContext(ctx)
	event, err := eventByID(db, eventID)
	if err != nil {
		return nil, err
	}
	if canManage(actor, event) {
		if err := db.Preload("Registrations").Preload("Registrations.Volunteer").First(event, eventID).Error; err != nil {
			return nil, err
		}
	}
	return event, nil
}
