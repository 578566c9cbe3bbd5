package main

import (
	"os"
	"strings"

	"brandops/pkg/progress"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	jwtSecret     []byte                 // loaded from env JWT_SECRET (fallback to dev default)
	logger        = zap.NewNop().Sugar() // replaced in main; nop keeps tests quiet
	publishedRule progress.PublishedRule
	appBaseURL    string // optional APP_BASE_URL used when building public links
)

func main() {
	// Load ./.env if present before reading vars; existing env wins.
	_ = godotenv.Load()

	logger = newLogger(os.Getenv("LOG_MODE"))
	defer func() { _ = logger.Sync() }()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}
	jwtSecret = []byte(secret)

	rule, err := progress.ParsePublishedRule(os.Getenv("PROGRESS_PUBLISHED_RULE"))
	if err != nil {
		logger.Fatalf("bad PROGRESS_PUBLISHED_RULE: %v", err)
	}
	publishedRule = rule
	appBaseURL = strings.TrimRight(os.Getenv("APP_BASE_URL"), "/")

	// Support a lightweight migrate command: `./brandops migrate`
	// It runs AutoMigrate and seeding then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		logger.Info("migration and seeding completed")
		return
	}

	initDB()

	r := gin.Default()

	setupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	if err := r.Run(":" + port); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}

// newLogger builds the process logger. LOG_MODE=prod selects the JSON
// production encoder; anything else gets the console development one.
func newLogger(mode string) *zap.SugaredLogger {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	zl, err := cfg.Build()
	if err != nil {
		zl = zap.Must(zap.NewProduction())
	}
	return zl.Sugar()
}
