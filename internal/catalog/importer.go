package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kimranazman/mymandarin/pkg/models"
)

// ImportConfig defines how catalog rows are read from a file.
type ImportConfig struct {
	FilePath         string // Path to the Excel or CSV file
	PinyinColumn     string // Column with the pinyin (word key)
	HanziColumn      string // Column with the characters
	MeaningColumn    string // Column with the English meaning
	NotesColumn      string // Column with optional notes
	ComponentsColumn string // Column with component glyphs, "+"-separated
	CategoryColumn   string // Column with the category name
	SheetName        string // Name of the sheet to import
	StartRow         int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig(path string) ImportConfig {
	return ImportConfig{
		FilePath:         path,
		PinyinColumn:     "A",
		HanziColumn:      "B",
		MeaningColumn:    "C",
		NotesColumn:      "D",
		ComponentsColumn: "E",
		CategoryColumn:   "F",
		SheetName:        "Sheet1",
		StartRow:         2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// Import reads a vocabulary catalog from an Excel or CSV file.
func Import(config ImportConfig) (*Catalog, *ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))

	if ext == ".csv" {
		return importFromCSV(config)
	}

	return importFromExcel(config)
}

// importFromExcel reads catalog rows from an Excel sheet
func importFromExcel(config ImportConfig) (*Catalog, *ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	seen := make(map[string]bool)
	var words []models.Word

	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}

		result.TotalProcessed++

		word, err := parseRow(row, config)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}
		if seen[word.Pinyin] {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: duplicate pinyin %q", i+1, word.Pinyin))
			continue
		}
		seen[word.Pinyin] = true
		words = append(words, word)
		result.Imported++
	}

	return New(words), result, nil
}

// importFromCSV reads catalog rows from a CSV file with the same column
// layout as the Excel format.
func importFromCSV(config ImportConfig) (*Catalog, *ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	seen := make(map[string]bool)
	var words []models.Word

	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error reading CSV: %v", err)
		}

		rowNum++

		// Skip header rows
		if rowNum < config.StartRow {
			continue
		}

		result.TotalProcessed++

		word, err := parseRow(row, config)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}
		if seen[word.Pinyin] {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: duplicate pinyin %q", rowNum, word.Pinyin))
			continue
		}
		seen[word.Pinyin] = true
		words = append(words, word)
		result.Imported++
	}

	return New(words), result, nil
}

// parseRow maps one file row onto a Word using the configured columns.
func parseRow(row []string, config ImportConfig) (models.Word, error) {
	word := models.Word{
		Pinyin:   cell(row, config.PinyinColumn),
		Hanzi:    cell(row, config.HanziColumn),
		Meaning:  cell(row, config.MeaningColumn),
		Notes:    cell(row, config.NotesColumn),
		Category: cell(row, config.CategoryColumn),
	}

	if word.Pinyin == "" {
		return models.Word{}, fmt.Errorf("missing pinyin")
	}
	if word.Meaning == "" {
		return models.Word{}, fmt.Errorf("missing meaning for %q", word.Pinyin)
	}
	if word.Category == "" {
		word.Category = "Uncategorized"
	}

	if raw := cell(row, config.ComponentsColumn); raw != "" {
		for _, part := range strings.Split(raw, "+") {
			if part = strings.TrimSpace(part); part != "" {
				word.Components = append(word.Components, part)
			}
		}
	}

	return word, nil
}

// cell returns the trimmed value of a column ("A", "B", ...) or "" when
// the row is too short or the column is unset.
func cell(row []string, column string) string {
	if column == "" {
		return ""
	}
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// columnToIndex converts an Excel-style column name to a 0-based index
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	index := 0
	for _, ch := range column {
		if ch < 'A' || ch > 'Z' {
			return -1
		}
		index = index*26 + int(ch-'A') + 1
	}
	return index - 1
}
