package model

import "time"

// ProjectModel mirrors the 'projects' table. UserID references users.id and
// is indexed because every query on this table filters by owner.
type ProjectModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
