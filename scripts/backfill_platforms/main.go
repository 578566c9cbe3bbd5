package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"brandops/models"
	"brandops/pkg/progress"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Creates missing platform progress rows for existing brands, e.g. after a
// new platform code is added to the enumeration.
func main() {
	brandID := flag.Uint("brand-id", 0, "backfill a single brand (default: all brands)")
	dryRun := flag.Bool("dry-run", false, "report what would be created without writing")
	flag.Parse()

	_ = godotenv.Load()
	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	var brands []models.BrandProfile
	q := db.Order("id")
	if *brandID != 0 {
		q = q.Where("id = ?", *brandID)
	}
	if err := q.Find(&brands).Error; err != nil {
		log.Fatalf("query brands failed: %v", err)
	}
	if len(brands) == 0 {
		log.Fatal("no brands matched")
	}

	total := 0
	for _, b := range brands {
		if *dryRun {
			var cnt int64
			db.Model(&models.PlatformProgress{}).Where("brand_id = ?", b.ID).Count(&cnt)
			missing := len(progress.Codes()) - int(cnt)
			if missing > 0 {
				fmt.Printf("[dry-run] would create %d rows for %s\n", missing, b.BrandName)
				total += missing
			}
			continue
		}
		created, err := progress.EnsureRows(db, b.ID)
		if err != nil {
			log.Fatalf("backfill failed for %s: %v", b.BrandName, err)
		}
		if created > 0 {
			fmt.Printf("created %d rows for %s\n", created, b.BrandName)
		}
		total += created
	}
	fmt.Printf("done: %d rows across %d brands\n", total, len(brands))
}
