package main

import (
	"flag"
	"fmt"
	"os"

	"brandops/process/report"

	"github.com/joho/godotenv"
)

func main() {
	brand := flag.String("brand", "", "brand name to report for")
	list := flag.Bool("list", false, "list platform rows")
	flag.Parse()

	if *brand == "" {
		fmt.Fprintln(os.Stderr, "usage: cmd_report --brand <name> [--list]")
		os.Exit(2)
	}
	_ = godotenv.Load()
	if os.Getenv("DB_DSN") == "" {
		fmt.Fprintln(os.Stderr, "DB_DSN not set; export DB_DSN and retry")
		os.Exit(2)
	}

	report.RunReport(*brand, *list)
}
