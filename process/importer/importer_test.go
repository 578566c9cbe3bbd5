package importer

import (
	"os"
	"path/filepath"
	"testing"

	"brandops/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "import.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.BrandProfile{}, &models.PlatformProgress{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func seedBrand(t *testing.T, gdb *gorm.DB, name string) models.BrandProfile {
	t.Helper()
	user := models.User{Username: name + "-owner", HashedPassword: []byte("x")}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	brand := models.BrandProfile{
		UserID:                  user.ID,
		BrandName:               name,
		PrimaryContactFirstName: "A",
		PrimaryContactLastName:  "B",
		PrimaryOfficialEmail:    "a@example.com",
		PrimaryPhoneNumber:      "1",
	}
	if err := gdb.Create(&brand).Error; err != nil {
		t.Fatalf("create brand: %v", err)
	}
	return brand
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sheet.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestImportFileUpsertsRows(t *testing.T) {
	gdb := openTestDB(t)
	brand := seedBrand(t, gdb, "Acme")
	path := writeCSV(t, "brand,platform,committed,drafted,published,notes\n"+
		"Acme,Instagram,10,5,2,reels first\n"+
		"Acme,instagram,12,6,3\n"+ // same platform again, counters win
		"Nope,instagram,1,1,1\n")

	res, err := ImportFile(gdb, path, nil)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Applied != 2 {
		t.Fatalf("expected 2 applied, got %d (skipped: %v)", res.Applied, res.Skipped)
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("expected 1 skipped (unknown brand), got %v", res.Skipped)
	}

	var row models.PlatformProgress
	if err := gdb.Where("brand_id = ? AND platform = ?", brand.ID, "instagram").First(&row).Error; err != nil {
		t.Fatalf("row not found: %v", err)
	}
	if row.Committed != 12 || row.Drafted != 6 || row.Published != 3 {
		t.Fatalf("unexpected counters: %+v", row)
	}
	// notes from the first row survive the second, note-less update
	if row.Notes != "reels first" {
		t.Fatalf("unexpected notes: %q", row.Notes)
	}
}

func TestImportFileWithMapping(t *testing.T) {
	gdb := openTestDB(t)
	brand := seedBrand(t, gdb, "Acme")
	path := writeCSV(t, "Acme,IG Feed,4,2,1\n")

	res, err := ImportFile(gdb, path, map[string]string{"IG Feed": "instagram"})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Applied != 1 {
		t.Fatalf("expected 1 applied, got %d (skipped: %v)", res.Applied, res.Skipped)
	}
	var cnt int64
	gdb.Model(&models.PlatformProgress{}).Where("brand_id = ? AND platform = ?", brand.ID, "instagram").Count(&cnt)
	if cnt != 1 {
		t.Fatalf("expected mapped row, got %d", cnt)
	}
}

func TestLooksLikeHeader(t *testing.T) {
	if !looksLikeHeader([]string{"brand", "platform", "committed"}) {
		t.Fatal("header row not detected")
	}
	if looksLikeHeader([]string{"Acme", "instagram", "10"}) {
		t.Fatal("data row misdetected as header")
	}
}
