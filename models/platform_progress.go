package models

import "time"

// PlatformProgress tracks staff-entered content volume for one brand on one
// platform. Platform holds a code from pkg/progress; at most one row exists
// per (brand, platform) pair.
type PlatformProgress struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	BrandID   uint         `gorm:"index;not null;uniqueIndex:idx_brand_platform"`
	Brand     BrandProfile `gorm:"foreignKey:BrandID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Platform  string       `gorm:"size:50;not null;uniqueIndex:idx_brand_platform"`

	Committed int `gorm:"default:0;not null"` // total content promised to the client
	Drafted   int `gorm:"default:0;not null"` // content currently drafted
	Published int `gorm:"default:0;not null"` // content completed and published

	Notes string `gorm:"type:text"` // internal notes for the team

	IsVisible bool `gorm:"default:true;not null"` // shown in dashboards
	IsActive  bool `gorm:"default:true;not null"` // operationally active

	ContentLinks []ContentLink `gorm:"foreignKey:PlatformProgressID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
