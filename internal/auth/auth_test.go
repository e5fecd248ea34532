package auth

import (
	"context"
	"testing"
	"time"

	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/config"
	"github.com/mayur-borole/Volunteers-Hub-sub000/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.APIKey{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestHandleMe(t *testing.T) {
	db := newTestDB(t)

	user := models.User{
		DiscordID: "123456",
		Username:  "testuser",
		Email:     "test@example.com",
		Avatar:    "avatar_url",
		Role:      models.RoleVolunteer,
	}
	db.Create(&user)

	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, db)

	t.Run("Authenticated", func(t *testing.T) {
		token, _ := handler.GenerateToken(user.ID)
		input := &AuthInput{
			Cookie: "auth_token=" + token,
		}
		resp, err := handler.HandleMe(context.Background(), input)
		if err != nil {
			t.Fatalf("HandleMe returned error: %v", err)
		}

		if resp.Body.Username != user.Username {
			t.Errorf("expected username %s, got %s", user.Username, resp.Body.Username)
		}
		if resp.Body.Role != models.RoleVolunteer {
			t.Errorf("expected role %s, got %s", models.RoleVolunteer, resp.Body.Role)
		}
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		input := &AuthInput{}
		_, err := handler.HandleMe(context.Background(), input)
		if err == nil {
			t.Fatal("expected error for unauthenticated request, got nil")
		}
	})

	t.Run("InvalidToken", func(t *testing.T) {
		input := &AuthInput{Cookie: "auth_token=not-a-jwt"}
		_, err := handler.HandleMe(context.Background(), input)
		if err == nil {
			t.Fatal("expected error for invalid token, got nil")
		}
	})
}

func TestAuthorizeWithAPIKey(t *testing.T) {
	db := newTestDB(t)

	user := models.User{DiscordID: "7890", Username: "keyuser", Role: models.RoleOrganizer}
	db.Create(&user)

	cfg := &config.Config{JWTSecret: "test-secret"}
	handler := NewAuthHandler(cfg, db)

	t.Run("ValidKey", func(t *testing.T) {
		db.Create(&models.APIKey{UserID: user.ID, Key: "valid-key", Name: "ci"})

		userID, err := handler.Authorize(context.Background(), AuthInput{APIKey: "valid-key"})
		if err != nil {
			t.Fatalf("Authorize returned error: %v", err)
		}
		if userID != user.ID {
			t.Errorf("expected user id %d, got %d", user.ID, userID)
		}

		var key models.APIKey
		db.Where("key = ?", "valid-key").First(&key)
		if key.LastUsedAt == nil {
			t.Error("expected last_used_at to be recorded")
		}
	})

	t.Run("ExpiredKey", func(t *testing.T) {
		expired := time.Now().Add(-time.Hour)
		db.Create(&models.APIKey{UserID: user.ID, Key: "expired-key", Name: "old", ExpiresAt: &expired})

		_, err := handler.Authorize(context.Background(), AuthInput{APIKey: "expired-key"})
		if err == nil {
			t.Fatal("expected error for expired key, got nil")
		}
	})

	t.Run("UnknownKey", func(t *testing.T) {
		_, err := handler.Authorize(context.Background(), AuthInput{APIKey: "nope"})
		if err == nil {
			t.Fatal("expected error for unknown key, got nil")
		}
	})
}
