package notifier

import (
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
)

type Topic string

const (
	TopicRegistrationUpdated Topic = "registrationUpdated"
	TopicAttendanceUpdated   Topic = "attendanceUpdated"
	TopicCertificateReady    Topic = "certificateReady"
	TopicRatingUpdated       Topic = "ratingUpdated"
	TopicFeedbackSubmitted   Topic = "feedbackSubmitted"
)

// Notification is the typed payload fanned out on lifecycle transitions.
type Notification struct {
	EventID     uint
	EventTitle  string
	VolunteerID uint
	Status      string
	Label       string
}

// Notifier delivers a notification to a user's channel. Publish is
// fire-and-forget from the caller's point of view: failures are logged by
// the caller, never propagated into the primary operation.
type Notifier interface {
	Publish(user models.User, topic Topic, n Notification) error
}
