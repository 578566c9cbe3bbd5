package progress

import (
	"strings"

	"brandops/models"

	"gorm.io/gorm"
)

// EnsureRows creates zero-valued progress rows for every enumerated platform
// the brand does not have yet. Idempotent; returns how many rows were
// created. Invoked at onboarding, from the manager backfill endpoint and
// from scripts/backfill_platforms — never from a read path.
func EnsureRows(gdb *gorm.DB, brandID uint) (int, error) {
	var existing []models.PlatformProgress
	if err := gdb.Where("brand_id = ?", brandID).Find(&existing).Error; err != nil {
		return 0, err
	}
	have := make(map[string]bool, len(existing))
	for _, row := range existing {
		have[row.Platform] = true
	}
	created := 0
	for _, code := range platformOrder {
		if have[code] {
			continue
		}
		row := models.PlatformProgress{
			BrandID:   brandID,
			Platform:  code,
			IsVisible: true,
			IsActive:  true,
		}
		if err := gdb.Create(&row).Error; err != nil {
			if isUniqueErr(err) { // concurrent backfill won the race
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}

func isUniqueErr(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "UNIQUE constraint")
}
