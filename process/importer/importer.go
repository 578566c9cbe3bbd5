// Package importer loads platform-progress counters from CSV sheets into the
// database, either one file at a time or from a watched drop directory.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"brandops/models"
	"brandops/pkg/progress"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Result summarizes one processed file.
type Result struct {
	Applied int
	Skipped []string // human-readable reasons for rows not applied
}

// ImportFile reads a CSV of (brand, platform, committed, drafted,
// published[, notes]) rows and upserts counters. A header row is detected by
// a non-numeric committed column and skipped. Unknown brands and invalid
// rows are reported in the result, never fatal.
func ImportFile(gdb *gorm.DB, path string, mapping map[string]string) (Result, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Result{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // notes column is optional
	rows, err := r.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) > 0 && looksLikeHeader(rows[0]) {
		rows = rows[1:]
	}
	records, rowErrs := progress.ImportRows(rows, mapping)
	res := Result{}
	for _, e := range rowErrs {
		res.Skipped = append(res.Skipped, e.Error())
	}
	for _, rec := range records {
		if err := applyRecord(gdb, rec); err != nil {
			res.Skipped = append(res.Skipped, fmt.Sprintf("%s/%s: %v", rec.BrandName, rec.Platform, err))
			continue
		}
		res.Applied++
	}
	return res, nil
}

func looksLikeHeader(row []string) bool {
	if len(row) < 3 {
		return false
	}
	c := strings.TrimSpace(row[2])
	return c != "" && (c[0] < '0' || c[0] > '9')
}

// applyRecord upserts one (brand, platform) row, matching brands by name.
func applyRecord(gdb *gorm.DB, rec progress.Record) error {
	var brand models.BrandProfile
	if err := gdb.Where("brand_name = ?", rec.BrandName).First(&brand).Error; err != nil {
		return fmt.Errorf("brand not found")
	}
	updates := map[string]any{
		"committed": rec.Committed,
		"drafted":   rec.Drafted,
		"published": rec.Published,
	}
	if rec.Notes != "" {
		updates["notes"] = rec.Notes
	}
	var row models.PlatformProgress
	err := gdb.Where("brand_id = ? AND platform = ?", brand.ID, rec.Platform).First(&row).Error
	if err == nil {
		return gdb.Model(&row).Updates(updates).Error
	}
	row = models.PlatformProgress{
		BrandID:   brand.ID,
		Platform:  rec.Platform,
		Committed: rec.Committed,
		Drafted:   rec.Drafted,
		Published: rec.Published,
		Notes:     rec.Notes,
		IsVisible: true,
		IsActive:  true,
	}
	return gdb.Create(&row).Error
}

// Watch imports every CSV dropped into dir until the context is canceled.
// Events are debounced so half-written files are not read mid-copy.
func Watch(ctx context.Context, gdb *gorm.DB, dir string, mapping map[string]string, log *zap.SugaredLogger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	log.Infof("watching %s for progress sheets", dir)

	pending := map[string]time.Time{}
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create == fsnotify.Create || ev.Op&fsnotify.Write == fsnotify.Write {
				if strings.ToLower(filepath.Ext(ev.Name)) == ".csv" {
					pending[ev.Name] = time.Now()
				}
			}
		case <-ticker.C:
			now := time.Now()
			for path, t := range pending {
				if now.Sub(t) < 300*time.Millisecond { // still settling
					continue
				}
				delete(pending, path)
				res, err := ImportFile(gdb, path, mapping)
				if err != nil {
					log.Errorf("import %s failed: %v", path, err)
					continue
				}
				log.Infof("imported %s: applied=%d skipped=%d", filepath.Base(path), res.Applied, len(res.Skipped))
				for _, s := range res.Skipped {
					log.Warnf("  %s", s)
				}
			}
		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warnf("watch error: %v", werr)
		}
	}
}
