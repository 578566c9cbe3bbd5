package report

import (
	"fmt"
	"log"
	"os"

	"brandops/models"
	"brandops/pkg/progress"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mustDBFromEnv() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set in env")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	return gdb
}

// RunReport prints the progress summary for one brand (by name) and
// optionally lists its platform rows.
func RunReport(brandName string, list bool) {
	gdb := mustDBFromEnv()

	var brand models.BrandProfile
	if err := gdb.Where("brand_name = ?", brandName).First(&brand).Error; err != nil {
		log.Fatalf("brand not found: %v", err)
	}

	var rows []models.PlatformProgress
	if err := gdb.Where("brand_id = ?", brand.ID).Order("platform").Find(&rows).Error; err != nil {
		log.Fatalf("query failed: %v", err)
	}

	s := progress.Summarize(rows)
	fmt.Printf("Report for brand=%s:\n", brand.BrandName)
	fmt.Printf("  platforms=%d committed=%d drafted=%d published=%d completion=%.1f%%\n",
		len(rows), s.TotalCommitted, s.TotalDrafted, s.TotalPublished, s.CompletionRate)
	fmt.Printf("  active=%d inactive=%d in_progress=%d\n", s.ActiveCount, s.InactiveCount, s.InProgressCount)

	if list {
		for _, r := range rows {
			completion, draft := progress.RowPercentages(r.Committed, r.Drafted, r.Published)
			fmt.Printf("%d|%s|%d|%d|%d|%.1f|%.1f|visible=%t|active=%t\n",
				r.ID, r.Platform, r.Committed, r.Drafted, r.Published, completion, draft, r.IsVisible, r.IsActive)
		}
	}
}
