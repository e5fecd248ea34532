package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
)

func TestHandleCreateEvent(t *testing.T) {
	db, authHandler, svc := setupHandlers(t)
	organizer := seedUser(t, db, "org", models.RoleOrganizer)
	volunteer := seedUser(t, db, "vol", models.RoleVolunteer)

	handler := NewEventHandler(svc, authHandler)

	req := &CreateEventRequest{}
	req.Body.Title = "Food Drive"
	req.Body.Description = "Sorting donations"
	req.Body.Location = "Community Center"
	req.Body.StartTime = time.Now().Add(72 * time.Hour)
	req.Body.EndTime = time.Now().Add(76 * time.Hour)
	req.Body.MaxVolunteers = 8

	t.Run("VolunteerForbidden", func(t *testing.T) {
		req.Cookie = authCookie(t, authHandler, volunteer.ID)
		_, err := handler.HandleCreateEvent(context.Background(), req)
		if got := statusOf(t, err); got != http.StatusForbidden {
			t.Errorf("expected 403, got %d", got)
		}
	})

	t.Run("OrganizerCreates", func(t *testing.T) {
		req.Cookie = authCookie(t, authHandler, organizer.ID)
		resp, err := handler.HandleCreateEvent(context.Background(), req)
		if err != nil {
			t.Fatalf("HandleCreateEvent returned error: %v", err)
		}
		if resp.Body.Title != "Food Drive" {
			t.Errorf("expected title, got %q", resp.Body.Title)
		}
		if resp.Body.Approved {
			t.Error("expected new event to be unapproved")
		}
		if resp.Body.Status != models.EventStatusUpcoming {
			t.Errorf("expected upcoming, got %s", resp.Body.Status)
		}
	})

	t.Run("InvalidTimesRejected", func(t *testing.T) {
		bad := &CreateEventRequest{}
		bad.Cookie = authCookie(t, authHandler, organizer.ID)
		bad.Body = req.Body
		bad.Body.EndTime = bad.Body.StartTime.Add(-time.Hour)
		_, err := handler.HandleCreateEvent(context.Background(), bad)
		if got := statusOf(t, err); got != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d", got)
		}
	})
}

func TestHandleListEvents(t *testing.T) {
	db, authHandler, svc := setupHandlers(t)
	organizer := seedUser(t, db, "org", models.RoleOrganizer)
	seedOpenEvent(t, db, organizer.ID)
	unapproved := seedOpenEvent(t, db, organizer.ID)
	db.Model(unapproved).Update("approved", false)

	handler := NewEventHandler(svc, authHandler)

	t.Run("OpenEvents", func(t *testing.T) {
		resp, err := handler.HandleListEvents(context.Background(), &ListEventsRequest{})
		if err != nil {
			t.Fatalf("HandleListEvents returned error: %v", err)
		}
		if len(resp.Body) != 1 {
			t.Errorf("expected 1 open event, got %d", len(resp.Body))
		}
	})

	t.Run("OwnEvents", func(t *testing.T) {
		req := &ListEventsRequest{Mine: true}
		req.Cookie = authCookie(t, authHandler, organizer.ID)
		resp, err := handler.HandleListEvents(context.Background(), req)
		if err != nil {
			t.Fatalf("HandleListEvents returned error: %v", err)
		}
		if len(resp.Body) != 2 {
			t.Errorf("expected 2 own events, got %d", len(resp.Body))
		}
	})

	t.Run("OwnEventsRequireAuth", func(t *testing.T) {
		_, err := handler.HandleListEvents(context.Background(), &ListEventsRequest{Mine: true})
		if got := statusOf(t, err); got != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", got)
		}
	})
}

func TestHandleGetEventLedgerVisibility(t *testing.T) {
	db, authHandler, svc := setupHandlers(t)
	organizer := seedUser(t, db, "org", models.RoleOrganizer)
	volunteer := seedUser(t, db, "vol", models.RoleVolunteer)
	event := seedOpenEvent(t, db, organizer.ID)

	regHandler := NewRegistrationHandler(svc, authHandler)
	apply := &ApplyRequest{EventID: event.ID}
	apply.Cookie = authCookie(t, authHandler, volunteer.ID)
	apply.Body.Name = "Vol"
	apply.Body.Age = 25
	apply.Body.Phone = "555-0100"
	if _, err := regHandler.HandleApply(context.Background(), apply); err != nil {
		t.Fatalf("HandleApply returned error: %v", err)
	}

	handler := NewEventHandler(svc, authHandler)

	t.Run("OrganizerSeesLedger", func(t *testing.T) {
		req := &GetEventRequest{ID: event.ID}
		req.Cookie = authCookie(t, authHandler, organizer.ID)
		resp, err := handler.HandleGetEvent(context.Background(), req)
		if err != nil {
			t.Fatalf("HandleGetEvent returned error: %v", err)
		}
		if len(resp.Body.Registrations) != 1 {
			t.Errorf("expected ledger with 1 registration, got %d", len(resp.Body.Registrations))
		}
	})

	t.Run("VolunteerDoesNot", func(t *testing.T) {
		req := &GetEventRequest{ID: event.ID}
		req.Cookie = authCookie(t, authHandler, volunteer.ID)
		resp, err := handler.HandleGetEvent(context.Background(), req)
		if err != nil {
			t.Fatalf("HandleGetEvent returned error: %v", err)
		}
		if len(resp.Body.Registrations) != 0 {
			t.Errorf("expected no ledger, got %d registrations", len(resp.Body.Registrations))
		}
	})
}
