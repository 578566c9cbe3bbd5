package models

import "time"

// SiteSetting stores the canonical site domain/name pair used when building
// absolute links. A single fixed row is maintained through an explicit
// get-or-create-or-update helper rather than ad-hoc writes.
type SiteSetting struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Domain    string `gorm:"size:255;uniqueIndex;not null"`
	Name      string `gorm:"size:255;not null"`
}
