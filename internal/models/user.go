package models

import (
	"gorm.io/gorm"
)

const (
	RoleVolunteer = "volunteer"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

type User struct {
	gorm.Model
	DiscordID string `gorm:"uniqueIndex"`
	Username  string
	Email     string
	Avatar    string
	Role      string `gorm:"default:'volunteer'"`
	Age       int
	Gender    string
	Phone     string
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanOrganize reports whether the user may create and manage events.
func (u *User) CanOrganize() bool {
	return u.Role == RoleOrganizer || u.Role == RoleAdmin
}
