package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Phone        *string
	PasswordHash string
	Role         UserRole
	CenterID     *uuid.UUID // set for admins only
	CreatedAt    time.Time
}

type Session struct {
	Token     uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}
