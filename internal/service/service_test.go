package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/notifier"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/stats"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fakeGenerator stands in for the certificate artifact generator. Renders
// can be made to fail per volunteer name to exercise partial finalization.
type fakeGenerator struct {
	mu      sync.Mutex
	renders int
	failFor map[string]error
}

func (g *fakeGenerator) Render(volunteerName, eventTitle, hoursText string, issuedAt time.Time) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err, ok := g.failFor[volunteerName]; ok {
		return "", err
	}
	g.renders++
	return fmt.Sprintf("/certificates/%s-%d.html", volunteerName, g.renders), nil
}

type publishedNotification struct {
	UserID uint
	Topic  notifier.Topic
	Notif  notifier.Notification
}

// recordingNotifier captures every publish for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	published []publishedNotification
}

func (n *recordingNotifier) Publish(user models.User, topic notifier.Topic, notif notifier.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.published = append(n.published, publishedNotification{UserID: user.ID, Topic: topic, Notif: notif})
	return nil
}

func (n *recordingNotifier) byTopic(topic notifier.Topic) []publishedNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []publishedNotification
	for _, p := range n.published {
		if p.Topic == topic {
			out = append(out, p)
		}
	}
	return out
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Registration{},
		&models.RegistrationHistory{},
		&models.Certificate{},
		&models.VolunteerStats{},
	))
	return db
}

func newTestService(t *testing.T) (*Service, *gorm.DB, *fakeGenerator, *recordingNotifier) {
	t.Helper()
	db := newTestDB(t)
	gen := &fakeGenerator{failFor: map[string]error{}}
	rec := &recordingNotifier{}
	svc := New(db, rec, gen, stats.NewStore(), nil, zap.NewNop())
	return svc, db, gen, rec
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()
	user := models.User{DiscordID: "discord-" + username, Username: username, Role: role}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createEvent(t *testing.T, db *gorm.DB, organizer *models.User, maxVolunteers int) *models.Event {
	t.Helper()
	event := models.Event{
		Title:         "Park Cleanup",
		Location:      "Riverside Park",
		StartTime:     time.Now().Add(24 * time.Hour),
		EndTime:       time.Now().Add(27 * time.Hour),
		OrganizerID:   organizer.ID,
		MaxVolunteers: maxVolunteers,
		Status:        models.EventStatusUpcoming,
		Approved:      true,
	}
	require.NoError(t, db.Create(&event).Error)
	return &event
}

func completeEvent(t *testing.T, db *gorm.DB, event *models.Event) {
	t.Helper()
	require.NoError(t, db.Model(event).Update("status", models.EventStatusCompleted).Error)
	event.Status = models.EventStatusCompleted
}

func applicant(name string) ApplicantInput {
	return ApplicantInput{Name: name, Age: 22, Gender: "female", Phone: "555-0100"}
}

func reloadRegistration(t *testing.T, db *gorm.DB, eventID, volunteerID uint) *models.Registration {
	t.Helper()
	var reg models.Registration
	require.NoError(t, db.Where("event_id = ? AND volunteer_id = ?", eventID, volunteerID).First(&reg).Error)
	return &reg
}

func reloadEvent(t *testing.T, db *gorm.DB, eventID uint) *models.Event {
	t.Helper()
	var event models.Event
	require.NoError(t, db.First(&event, eventID).Error)
	return &event
}
