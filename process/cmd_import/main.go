package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strings"

	"brandops/process/importer"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	file := flag.String("file", "", "CSV file to import once")
	watch := flag.String("watch", "", "directory to watch for dropped CSV files")
	mappingPath := flag.String("mapping", "", "optional CSV of (sheet label, platform code) pairs")
	flag.Parse()
	if *file == "" && *watch == "" {
		log.Fatal("--file or --watch is required")
	}

	_ = godotenv.Load()
	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	var mapping map[string]string
	if *mappingPath != "" {
		mapping, err = loadMapping(*mappingPath)
		if err != nil {
			log.Fatalf("failed to load mapping: %v", err)
		}
	}

	zl := zap.Must(zap.NewProduction()).Sugar()
	defer func() { _ = zl.Sync() }()

	if *file != "" {
		res, err := importer.ImportFile(gdb, *file, mapping)
		if err != nil {
			log.Fatalf("import failed: %v", err)
		}
		zl.Infof("imported %s: applied=%d skipped=%d", *file, res.Applied, len(res.Skipped))
		for _, s := range res.Skipped {
			zl.Warnf("  %s", s)
		}
		return
	}

	if err := importer.Watch(context.Background(), gdb, *watch, mapping, zl); err != nil && err != context.Canceled {
		log.Fatalf("watcher stopped: %v", err)
	}
}

// loadMapping reads "label,code" pairs so one sheet dialect can be mapped
// without recompiling.
func loadMapping(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	m := make(map[string]string, len(rows))
	for _, row := range rows {
		if len(row) >= 2 {
			m[strings.TrimSpace(row[0])] = strings.TrimSpace(row[1])
		}
	}
	return m, nil
}
