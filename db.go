package main

import (
	"os"
	"strings"

	"brandops/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		logger.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatalf("failed to connect postgres database: %v", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true). Any permission errors will be logged and ignored.
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		migrateAll(db)
	}
	seedDB()

	// Keep the canonical site row in sync with the deployment config. This
	// replaces ad-hoc writes scattered through setup scripts with one
	// explicit upsert.
	if domain := os.Getenv("SITE_DOMAIN"); domain != "" {
		name := os.Getenv("SITE_NAME")
		if name == "" {
			name = domain
		}
		if err := EnsureSiteSetting(db, domain, name); err != nil {
			logger.Warnf("site setting upsert failed: %v", err)
		}
	}
}

// migrateAll migrates models individually so a failure on one doesn't block
// others. Roles go first so the users FK can be applied safely.
func migrateAll(gdb *gorm.DB) {
	ordered := []struct {
		name  string
		model any
	}{
		{"roles", &models.Role{}},
		{"users", &models.User{}},
		{"refresh_tokens", &models.RefreshToken{}},
		{"brand_profiles", &models.BrandProfile{}},
		{"platform_progresses", &models.PlatformProgress{}},
		{"content_links", &models.ContentLink{}},
		{"site_settings", &models.SiteSetting{}},
	}
	for _, m := range ordered {
		if err := gdb.AutoMigrate(m.model); err != nil {
			logger.Warnf("migration warning (%s): %v", m.name, err)
		}
	}
}

func seedDB() {
	// Ensure master roles exist
	roles := []models.Role{
		{Name: models.RoleStaff, Description: "manager console access"},
		{Name: models.RoleClient, Description: "brand owner"},
	}
	for _, r := range roles {
		var cnt int64
		db.Model(&models.Role{}).Where("name = ?", r.Name).Count(&cnt)
		if cnt == 0 {
			db.Create(&r)
		}
	}

	// Check if admin user exists
	var count int64
	db.Model(&models.User{}).Where("username = ?", "admin").Count(&count)
	if count == 0 {
		var role models.Role
		if err := db.Where("name = ?", models.RoleStaff).First(&role).Error; err != nil {
			logger.Warnf("failed to find staff role: %v", err)
		}
		rid := role.ID
		admin := models.User{
			Username: "admin",
			RoleID:   &rid,
		}
		pw := os.Getenv("ADMIN_PASSWORD")
		if pw == "" {
			pw = "admin123"
		}
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		admin.HashedPassword = hashedPassword
		db.Create(&admin)
		logger.Infof("seeded staff user: username=admin")
	}
}

// EnsureSiteSetting is an explicit get-or-create-or-update of the canonical
// site row keyed on domain. No swallowed conflicts, no global patching of
// library save paths.
func EnsureSiteSetting(gdb *gorm.DB, domain, name string) error {
	var site models.SiteSetting
	err := gdb.Where("domain = ?", domain).First(&site).Error
	switch {
	case err == nil:
		if site.Name == name {
			return nil
		}
		site.Name = name
		return gdb.Save(&site).Error
	case isNotFound(err):
		site = models.SiteSetting{Domain: domain, Name: name}
		if cerr := gdb.Create(&site).Error; cerr != nil {
			if isUniqueConstraintError(cerr) {
				// lost a create race; the row exists now, update it
				return gdb.Model(&models.SiteSetting{}).Where("domain = ?", domain).Update("name", name).Error
			}
			return cerr
		}
		return nil
	default:
		return err
	}
}
