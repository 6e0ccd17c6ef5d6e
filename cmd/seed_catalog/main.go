// Command seed_catalog loads clothing items from a CSV file into the catalog
// table. Expected headers:
//
//	name,description,color,pattern,material,estimated_pricing,gender,events,type_of_clothing,image_url
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/kmorales-dev/closetwish-backend/pkg/config"
	"github.com/kmorales-dev/closetwish-backend/pkg/db"
	"github.com/kmorales-dev/closetwish-backend/pkg/db/models"
	"github.com/kmorales-dev/closetwish-backend/pkg/logger"
)

const insertBatchSize = 200

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed_catalog"})

	_ = godotenv.Load()

	path := flag.String("csv", "", "path to the catalog CSV file")
	truncate := flag.Bool("truncate", false, "remove existing catalog rows first")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "missing -csv path")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed_catalog",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
	})

	items, err := readCatalogCSV(*path)
	if err != nil {
		logg.Error(ctx, "failed to read csv", err)
		os.Exit(1)
	}
	if len(items) == 0 {
		logg.Warn(ctx, "no rows found, nothing inserted")
		return
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	err = dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		if *truncate {
			if err := tx.Exec("DELETE FROM clothing_items").Error; err != nil {
				return fmt.Errorf("truncate catalog: %w", err)
			}
		}
		if err := tx.CreateInBatches(items, insertBatchSize).Error; err != nil {
			return fmt.Errorf("insert catalog rows: %w", err)
		}
		return nil
	})
	if err != nil {
		logg.Error(ctx, "failed to seed catalog", err)
		os.Exit(1)
	}

	ctx = logg.WithField(ctx, "rows", len(items))
	logg.Info(ctx, "catalog seeded")
}

func readCatalogCSV(path string) ([]models.ClothingItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := map[string]int{}
	for i, name := range header {
		index[name] = i
	}
	required := []string{
		"name", "description", "color", "pattern", "material",
		"estimated_pricing", "gender", "events", "type_of_clothing", "image_url",
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("csv missing column %q", col)
		}
	}

	var items []models.ClothingItem
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		items = append(items, models.ClothingItem{
			Name:             record[index["name"]],
			Description:      record[index["description"]],
			Color:            record[index["color"]],
			Pattern:          record[index["pattern"]],
			Material:         record[index["material"]],
			EstimatedPricing: record[index["estimated_pricing"]],
			Gender:           record[index["gender"]],
			Events:           record[index["events"]],
			TypeOfClothing:   record[index["type_of_clothing"]],
			ImageURL:         record[index["image_url"]],
		})
	}
	return items, nil
}
