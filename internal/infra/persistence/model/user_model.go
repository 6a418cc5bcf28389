// Package model defines the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel maps a registered account onto the users table.
type UserModel struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"column:email;type:varchar(255);not null"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         string    `gorm:"column:role;type:varchar(32);not null;default:user"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}
