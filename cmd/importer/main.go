package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/scam165/anti-scam-platform/internal/article"
	"github.com/scam165/anti-scam-platform/internal/config"
	"github.com/scam165/anti-scam-platform/internal/db"
)

func main() {
	csvFile := flag.String("csv-file", "anti_scam_article.csv",
		"path to the CSV file (relative paths resolve under DATA_DIR)")
	flag.Parse()

	cfg := config.Load()

	path, err := article.ResolvePath(cfg.DataDir, *csvFile)
	if err != nil {
		log.Fatalf("import: %v", err)
	}

	gdb := db.Connect(cfg.DBDSN)
	if err := gdb.AutoMigrate(&article.Article{}); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	repo := article.NewRepo(gdb)
	importer := article.NewImporter(repo, os.Stdout, os.Stderr)

	fmt.Printf("Importing articles from: %s\n", path)

	stats, err := importer.ImportFile(context.Background(), path)
	if err != nil {
		log.Fatalf("import: %v", err)
	}

	fmt.Printf("Import completed: %s\n", stats)
}
