package service

import (
	"context"
	"testing"
	"time"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEvent(t *testing.T) {
	svc, db, _, _ := newTestService(t)
	organizer := createUser(t, db, "org", models.RoleOrganizer)
	volunteer := createUser(t, db, "vol", models.RoleVolunteer)
	ctx := context.Background()

	input := CreateEventInput{
		Title:         "Beach Cleanup",
		Description:   "Bring gloves",
		Location:      "North Beach",
		StartTime:     time.Now().Add(48 * time.Hour),
		EndTime:       time.Now().Add(52 * time.Hour),
		MaxVolunteers: 10,
	}

	t.Run("VolunteersCannotCreate", func(t *testing.T) {
		_, err := svc.CreateEvent(ctx, volunteer, input)
		assert.Equal(t, KindForbidden, KindOf(err))
	})

	t.Run("ValidatesInput", func(t *testing.T) {
		bad := input
		bad.MaxVolunteers = 0
		_, err := svc.CreateEvent(ctx, organizer, bad)
		assert.Equal(t, KindValidation, KindOf(err))

		bad = input
		bad.EndTime = bad.StartTime.Add(-time.Hour)
		_, err = svc.CreateEvent(ctx, organizer, bad)
		assert.Equal(t, KindValidation, KindOf(err))
	})

	t.Run("CreatesUnapprovedUpcoming", func(t *testing.T) {
		event, err := svc.CreateEvent(ctx, organizer, input)
		require.NoError(t, err)
		assert.False(t, event.Approved)
		assert.Equal(t, models.EventStatusUpcoming, event.Status)
		assert.Equal(t, organizer.ID, event.OrganizerID)
	})
}

func TestApproveEvent(t *testing.T) {
	svc, db, _, _ := newTestService(t)
	organizer := createUser(t, db, "org", models.RoleOrganizer)
	admin := createUser(t, db, "admin", models.RoleAdmin)
	event := createEvent(t, db, organizer, 5)
	require.NoError(t, db.Model(event).Update("approved", false).Error)
	ctx := context.Background()

	t.Run("OrganizerCannotApprove", func(t *testing.T) {
		err := svc.ApproveEvent(ctx, organizer, event.ID)
		assert.Equal(t, KindForbidden, KindOf(err))
	})

	t.Run("AdminApproves", func(t *testing.T) {
		require.NoError(t, svc.ApproveEvent(ctx, admin, event.ID))
		assert.True(t, reloadEvent(t, db, event.ID).Approved)
	})

	t.Run("SecondApprovalFails", func(t *testing.T) {
		err := svc.ApproveEvent(ctx, admin, event.ID)
		assert.Equal(t, KindInvalidState, KindOf(err))
	})
}

func TestEventLifecycleTransitions(t *testing.T) {
	svc, db, _, _ := newTestService(t)
	organizer := createUser(t, db, "org", models.RoleOrganizer)
	ctx := context.Background()

	t.Run("CompleteThenCancelFails", func(t *testing.T) {
		event := createEvent(t, db, organizer, 5)
		require.NoError(t, svc.CompleteEvent(ctx, organizer, event.ID))
		assert.Equal(t, models.EventStatusCompleted, reloadEvent(t, db, event.ID).Status)

		err := svc.CancelEvent(ctx, organizer, event.ID)
		assert.Equal(t, KindInvalidState, KindOf(err))
	})

	t.Run("CancelThenCompleteFails", func(t *testing.T) {
		event := createEvent(t, db, organizer, 5)
		require.NoError(t, svc.CancelEvent(ctx, organizer, event.ID))

		err := svc.CompleteEvent(ctx, organizer, event.ID)
		assert.Equal(t, KindInvalidState, KindOf(err))
	})

	t.Run("OnlyManagerTransitions", func(t *testing.T) {
		event := createEvent(t, db, organizer, 5)
		other := createUser(t, db, "other-org", models.RoleOrganizer)
		err := svc.CompleteEvent(ctx, other, event.ID)
		assert.Equal(t, KindForbidden, KindOf(err))
	})
}

func TestDeleteEventHidesIt(t *testing.T) {
	svc, db, _, _ := newTestService(t)
	organizer := createUser(t, db, "org", models.RoleOrganizer)
	event := createEvent(t, db, organizer, 5)
	ctx := context.Background()

	require.NoError(t, svc.DeleteEvent(ctx, organizer, event.ID))

	_, err := svc.GetEvent(ctx, organizer, event.ID)
	assert.Equal(t, KindNotFound, KindOf(err))

	events, err := svc.ListOpenEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestListOpenEvents(t *testing.T) {
	svc, db, _, _ := newTestService(t)
	organizer := createUser(t, db, "org", models.RoleOrganizer)
	open := createEvent(t, db, organizer, 5)
	unapproved := createEvent(t, db, organizer, 5)
	require.NoError(t, db.Model(unapproved).Update("approved", false).Error)
	completed := createEvent(t, db, organizer, 5)
	completeEvent(t, db, completed)

	events, err := svc.ListOpenEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, open.ID, events[0].ID)
}

func TestGetEventLedgerVisibility(t *testing.T) {
	svc, db, _, _ := newTestService(t)
	organizer := createUser(t, db, "org", models.RoleOrganizer)
	volunteer := createUser(t, db, "vol", models.RoleVolunteer)
	event := createEvent(t, db, organizer, 5)
	ctx := context.Background()

	_, err := svc.Apply(ctx, volunteer, event.ID, applicant("vol"))
	require.NoError(t, err)

	forOrganizer, err := svc.GetEvent(ctx, organizer, event.ID)
	require.NoError(t, err)
	assert.Len(t, forOrganizer.Registrations, 1)

	forVolunteer, err := svc.GetEvent(ctx, volunteer, event.ID)
	require.NoError(t, err)
	assert.Empty(t, forVolunteer.Registrations)
}
