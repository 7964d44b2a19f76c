package models

import (
	"time"
)

// Role defines allowed roles in the system
type Role string

const (
	RoleSystemAdmin Role = "SYSTEM_ADMIN"
	RoleNormalUser  Role = "NORMAL_USER"
	RoleStoreOwner  Role = "STORE_OWNER"
)

// Valid reports whether r is one of the three defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSystemAdmin, RoleNormalUser, RoleStoreOwner:
		return true
	}
	return false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Address      string    `json:"address" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null;default:'NORMAL_USER'"`
	StoreID      *uint     `json:"store_id,omitempty"`
	Store        *Store    `json:"store,omitempty" gorm:"foreignKey:StoreID"`
	Ratings      []Rating  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
