// Package model contains the GORM persistence models. They mirror the
// domain entities but carry database tags and are never exposed outside
// the persistence layer.
package model

import "time"

// UserModel is the GORM model for the users table.
type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password;not null"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
