package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/Rezateymoori/esm-famil-bot/internal/dict"
	"github.com/Rezateymoori/esm-famil-bot/internal/game"
)

type wordRecord struct {
	Category string
	Word     string
}

func main() {
	filePath := flag.String("file", "words.csv", "path to words csv")
	dataPath := flag.String("data", "data", "dictionary directory")
	flag.Parse()

	records, err := readWords(*filePath)
	if err != nil {
		log.Fatalf("failed to read words: %v", err)
	}

	words := dict.New(dict.NewFileStore(*dataPath), game.DefaultCategories)
	inserted := 0
	for _, record := range records {
		if err := words.Add(record.Category, record.Word); err != nil {
			log.Fatalf("failed to add word %q to %q: %v", record.Word, record.Category, err)
		}
		inserted++
	}

	log.Printf("loaded %d words", inserted)
}

func readWords(path string) ([]wordRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var records []wordRecord
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) < 2 {
			continue
		}
		category := strings.TrimSpace(row[0])
		word := strings.TrimSpace(row[1])
		if category == "" || word == "" {
			continue
		}
		records = append(records, wordRecord{Category: category, Word: word})
	}
	return records, nil
}
