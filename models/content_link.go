package models

import "time"

// PlatformProfileTitle is the reserved title for the single canonical link
// pointing at the brand's profile page on a platform. The manager update
// path upserts or deletes exactly one link with this title per row.
const PlatformProfileTitle = "Platform Profile"

// ContentLink is a titled URL attached to a platform row (content calendar,
// draft folder, published piece, ...). Staff may attach any number.
type ContentLink struct {
	ID                 uint `gorm:"primaryKey"`
	CreatedAt          time.Time
	PlatformProgressID uint             `gorm:"index;not null"`
	PlatformProgress   PlatformProgress `gorm:"foreignKey:PlatformProgressID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Title              string           `gorm:"size:200;not null"`
	URL                string           `gorm:"size:512;not null"`
}
