package progress

import (
	"math"

	"brandops/models"
)

// Summary holds the dashboard aggregate over a brand's platform rows.
type Summary struct {
	TotalCommitted  int     `json:"total_committed"`
	TotalDrafted    int     `json:"total_drafted"`
	TotalPublished  int     `json:"total_published"`
	CompletionRate  float64 `json:"completion_rate"`   // published/committed, percent
	ActiveCount     int     `json:"active_count"`      // committed > 0
	InactiveCount   int     `json:"inactive_count"`    // committed == 0
	InProgressCount int     `json:"in_progress_count"` // drafted > 0 && published < committed
}

// round1 rounds to one decimal place, matching how percentages are shown.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// pct returns part/whole as a percentage rounded to one decimal, 0 when the
// whole is zero so inactive platforms never divide by zero.
func pct(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return round1(float64(part) / float64(whole) * 100)
}

// RowPercentages computes the per-row derived fields: completion
// (published over committed) and draft (drafted over committed).
func RowPercentages(committed, drafted, published int) (completion, draft float64) {
	return pct(published, committed), pct(drafted, committed)
}

// Summarize folds a brand's platform rows into totals, a completion rate
// and the three chart category counts. Pure: calling it twice on the same
// rows yields the same Summary.
func Summarize(rows []models.PlatformProgress) Summary {
	var s Summary
	for _, r := range rows {
		s.TotalCommitted += r.Committed
		s.TotalDrafted += r.Drafted
		s.TotalPublished += r.Published
		if r.Committed > 0 {
			s.ActiveCount++
		} else {
			s.InactiveCount++
		}
		if r.Drafted > 0 && r.Published < r.Committed {
			s.InProgressCount++
		}
	}
	s.CompletionRate = pct(s.TotalPublished, s.TotalCommitted)
	return s
}

// FillMissing returns rows extended with zero-valued placeholders for every
// enumerated platform not present, in display order. Existing rows keep
// their stored values. Nothing is persisted here; backfill on disk is the
// explicit EnsureRows operation.
func FillMissing(brandID uint, rows []models.PlatformProgress) []models.PlatformProgress {
	byCode := make(map[string]models.PlatformProgress, len(rows))
	for _, r := range rows {
		byCode[r.Platform] = r
	}
	out := make([]models.PlatformProgress, 0, len(platformOrder))
	for _, code := range platformOrder {
		if r, ok := byCode[code]; ok {
			out = append(out, r)
			continue
		}
		out = append(out, models.PlatformProgress{
			BrandID:   brandID,
			Platform:  code,
			IsVisible: true,
			IsActive:  true,
		})
	}
	return out
}
