// Package model contains the GORM persistence models mirroring the database tables.
package model

import "time"

// UserModel mirrors the 'users' table. The database enforces uniqueness of
// both email and username; the application's pre-checks are advisory only.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time

	Projects []ProjectModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
