package main

import (
	"encoding/csv"
	"ilmhub/config"
	"ilmhub/database"
	"ilmhub/models"
	"log"
	"os"
	"strconv"
	"strings"
)

// Seeds the sector/level/course catalog from Catalog.csv. Expected columns:
// sector_code, sector_name, level_number, level_title, course_title, course_order
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("Catalog.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	// Create CSV reader
	reader := csv.NewReader(file)

	// Read all records
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	db := database.Database.Db
	inserted := 0
	skipped := 0

	for _, row := range records[1:] {
		sectorCode := getField(row, headerIndex, "sector_code")
		levelNumber := parseInt(getField(row, headerIndex, "level_number"))
		courseTitle := getField(row, headerIndex, "course_title")

		if sectorCode == "" || levelNumber == 0 || courseTitle == "" {
			skipped++
			continue
		}

		// Sector: create on first sight
		var sector models.Sector
		if err := db.Where("code = ?", sectorCode).First(&sector).Error; err != nil {
			sector = models.Sector{
				Code:     sectorCode,
				Name:     getField(row, headerIndex, "sector_name"),
				IsActive: true,
			}
			if err := db.Create(&sector).Error; err != nil {
				log.Fatalf("Failed to create sector %s: %v", sectorCode, err)
			}
		}

		// Level: create on first sight
		var level models.Level
		if err := db.Where("sector_id = ? AND level_number = ?", sector.ID, levelNumber).First(&level).Error; err != nil {
			level = models.Level{
				SectorID:    sector.ID,
				LevelNumber: levelNumber,
				Title:       getField(row, headerIndex, "level_title"),
				IsActive:    true,
			}
			if err := db.Create(&level).Error; err != nil {
				log.Fatalf("Failed to create level %d of %s: %v", levelNumber, sectorCode, err)
			}
		}

		// Course: skip duplicates by title within the level
		var existing models.Course
		if err := db.Where("level_id = ? AND title = ?", level.ID, courseTitle).First(&existing).Error; err == nil {
			skipped++
			continue
		}

		course := models.Course{
			LevelID:    level.ID,
			SectorID:   sector.ID,
			Title:      courseTitle,
			OrderIndex: parseInt(getField(row, headerIndex, "course_order")),
			IsActive:   true,
		}
		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("Failed to create course %s: %v", courseTitle, err)
		}
		inserted++
	}

	log.Printf("Catalog import complete. Inserted: %d, Skipped: %d", inserted, skipped)
}

func getField(row []string, headerIndex map[string]int, name string) string {
	idx, ok := headerIndex[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}
