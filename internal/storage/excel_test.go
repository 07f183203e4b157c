package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jonesrussell/newswatch/internal/logger"
	"github.com/jonesrussell/newswatch/internal/scraper"
	"github.com/jonesrussell/newswatch/internal/storage"
)

func TestAppend_WritesHeaderAndRow(t *testing.T) {
	t.Parallel()

	writer := storage.NewExcelWriter(t.TempDir(), logger.NewNoOp())
	article := &scraper.Article{
		Title:             "Cargo Ship Runs Aground Near Port",
		Date:              "Aug. 28, 2026",
		Description:       "The ship was carrying goods worth $2,500.",
		ImageFilename:     "aground.jpg",
		SearchPhraseCount: 2,
		ContainsMoney:     true,
	}

	require.NoError(t, writer.Append(article))

	f, err := excelize.OpenFile(writer.Path())
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	rows, err := f.GetRows("News")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"Title",
		"Date",
		"Description",
		"Image Filename",
		"Count of Search Phrases",
		"Contains Money",
	}, rows[0])

	assert.Equal(t, "Cargo Ship Runs Aground Near Port", rows[1][0])
	assert.Equal(t, "Aug. 28, 2026", rows[1][1])
	assert.Equal(t, "The ship was carrying goods worth $2,500.", rows[1][2])
	assert.Equal(t, "aground.jpg", rows[1][3])
	assert.Equal(t, "2", rows[1][4])
	assert.Equal(t, "TRUE", rows[1][5])
}

func TestAppend_NoImageLeavesCellEmpty(t *testing.T) {
	t.Parallel()

	writer := storage.NewExcelWriter(t.TempDir(), logger.NewNoOp())
	article := &scraper.Article{
		Title: "Harbor Reopens",
		Date:  "Aug. 27, 2026",
	}

	require.NoError(t, writer.Append(article))

	f, err := excelize.OpenFile(writer.Path())
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	value, err := f.GetCellValue("News", "D2")
	require.NoError(t, err)
	assert.Empty(t, value)

	money, err := f.GetCellValue("News", "F2")
	require.NoError(t, err)
	assert.Equal(t, "FALSE", money)
}

func TestAppend_MissingDirectoryFails(t *testing.T) {
	t.Parallel()

	writer := storage.NewExcelWriter("/nonexistent/output/dir", logger.NewNoOp())

	err := writer.Append(&scraper.Article{Title: "x"})
	assert.Error(t, err)
}
