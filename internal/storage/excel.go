// Package storage persists extracted articles to a spreadsheet file.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/jonesrussell/newswatch/internal/logger"
	"github.com/jonesrussell/newswatch/internal/scraper"
)

// FileName is the spreadsheet written under the output directory.
const FileName = "news_data.xlsx"

// sheetName is the single worksheet holding the article row.
const sheetName = "News"

// header is the first row of the worksheet.
var header = []string{
	"Title",
	"Date",
	"Description",
	"Image Filename",
	"Count of Search Phrases",
	"Contains Money",
}

// ExcelWriter writes one header row and one article row to an xlsx file.
type ExcelWriter struct {
	path string
	log  logger.Interface
}

// NewExcelWriter creates a writer targeting news_data.xlsx in outputDir.
func NewExcelWriter(outputDir string, log logger.Interface) *ExcelWriter {
	return &ExcelWriter{
		path: filepath.Join(outputDir, FileName),
		log:  log,
	}
}

// Path returns the spreadsheet file path.
func (w *ExcelWriter) Path() string {
	return w.path
}

// Append writes the header row and the article row, creating the file.
func (w *ExcelWriter) Append(article *scraper.Article) error {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			w.log.Warn("Failed to close workbook", "error", closeErr)
		}
	}()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	rows := [][]any{
		toAnySlice(header),
		{
			article.Title,
			article.Date,
			article.Description,
			article.ImageFilename,
			article.SearchPhraseCount,
			article.ContainsMoney,
		},
	}
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("failed to compute cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save spreadsheet %s: %w", w.path, err)
	}

	w.log.Info("Article saved to spreadsheet", "path", w.path)
	return nil
}

// toAnySlice widens a string slice for mixed-type row writing.
func toAnySlice(values []string) []any {
	row := make([]any, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
