package models

import "time"

// Role names seeded at startup. Staff gets full manager-console access,
// clients only see their own dashboard.
const (
	RoleStaff  = "staff"
	RoleClient = "client"
)

// Role represents user roles with numeric primary key
type Role struct {
	ID          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string `gorm:"size:32;uniqueIndex;not null"`
	Description string `gorm:"size:255"`
}
