package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/certificates"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/metrics"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/notifier"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/stats"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service implements the event registration and attendance lifecycle: the
// registration ledger, attendance tracking, finalization and the rating
// exchange. All mutations to one event are serialized through per-event
// locks; side effects (notifications, certificate rendering) run after the
// state change is committed and never roll it back.
type Service struct {
	db       *gorm.DB
	notifier notifier.Notifier
	certs    certificates.Generator
	stats    *stats.Store
	metrics  *metrics.Metrics
	logger   *zap.Logger
	validate *validator.Validate
	locks    *eventLocks
}

func New(db *gorm.DB, n notifier.Notifier, certs certificates.Generator, st *stats.Store, m *metrics.Metrics, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if st == nil {
		st = stats.NewStore()
	}
	return &Service{
		db:       db,
		notifier: n,
		certs:    certs,
		stats:    st,
		metrics:  m,
		logger:   logger,
		validate: validator.New(),
		locks:    newEventLocks(),
	}
}

func eventByID(tx *gorm.DB, id uint) (*models.Event, error) {
	var event models.Event
	if err := tx.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("event not found")
		}
		return nil, err
	}
	return &event, nil
}

func registrationFor(tx *gorm.DB, eventID, volunteerID uint) (*models.Registration, error) {
	var reg models.Registration
	err := tx.Where("event_id = ? AND volunteer_id = ?", eventID, volunteerID).First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func approvedCount(tx *gorm.DB, eventID uint) (int64, error) {
	var count int64
	err := tx.Model(&models.Registration{}).
		Where("event_id = ? AND status = ?", eventID, models.RegistrationStatusApproved).
		Count(&count).Error
	return count, err
}

func appendHistory(tx *gorm.DB, reg *models.Registration) error {
	history := models.Snapshot(reg)
	return tx.Create(&history).Error
}

func canManage(actor *models.User, event *models.Event) bool {
	return actor.IsAdmin() || event.OrganizerID == actor.ID
}

func (s *Service) userByID(id uint) (models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	return user, err
}

// publish delivers a notification and absorbs failures: they are logged and
// counted, never surfaced to the caller.
func (s *Service) publish(user models.User, topic notifier.Topic, n notifier.Notification) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(user, topic, n); err != nil {
		s.metrics.IncrementNotifyFailure()
		s.logger.Warn("failed to publish notification",
			zap.Uint("user_id", user.ID),
			zap.String("topic", string(topic)),
			zap.Error(err))
	}
}

// notifyParties sends the same notification to the volunteer and the event
// organizer.
func (s *Service) notifyParties(event *models.Event, volunteer models.User, topic notifier.Topic, n notifier.Notification) {
	s.publish(volunteer, topic, n)
	if organizer, err := s.userByID(event.OrganizerID); err == nil {
		s.publish(organizer, topic, n)
	}
}
