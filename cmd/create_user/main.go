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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	staff := flag.Bool("staff", false, "grant the staff role (manager console access)")
	brandName := flag.String("brand", "", "also create a brand profile with this name")
	flag.Parse()
	if flag.NArg() < 2 {
		fmt.Println("usage: go run ./cmd/create_user [--staff] <username> <password>")
		os.Exit(2)
	}
	username := flag.Arg(0)
	password := flag.Arg(1)

	_ = godotenv.Load()
	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	roleName := models.RoleClient
	if *staff {
		roleName = models.RoleStaff
	}
	var role models.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		role = models.Role{Name: roleName}
		db.Create(&role)
	}

	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		fmt.Printf("user %s already exists (id=%d)\n", username, existing.ID)
		os.Exit(0)
	}

	hpw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}
	rid := role.ID
	user := models.User{Username: username, HashedPassword: hpw, RoleID: &rid}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	fmt.Printf("created %s user %s id=%d\n", roleName, username, user.ID)

	if *brandName != "" {
		brand := models.BrandProfile{UserID: user.ID, BrandName: *brandName}
		if err := db.Create(&brand).Error; err != nil {
			log.Fatalf("failed to create brand profile: %v", err)
		}
		created, err := progress.EnsureRows(db, brand.ID)
		if err != nil {
			log.Fatalf("platform backfill failed: %v", err)
		}
		fmt.Printf("created brand %s id=%d with %d platform rows\n", brand.BrandName, brand.ID, created)
	}
}
