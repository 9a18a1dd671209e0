package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"request-board/internal/entities"
	"request-board/pkg/utils"
)

func TestReportService_ExportXLSX(t *testing.T) {
	api := newFakeAdminAPI(
		entities.Request{ID: "1", Name: "\x1b[31mАнна\x1b[0m", Status: "new", UserID: "7",
			Documents: []entities.Document{{FileID: "f1", FileName: "иск.pdf"}}},
		entities.Request{ID: "2", Name: "Tom & Jerry", Status: "done", UserID: "8"},
	)
	board, _, _ := newTestBoard(t, api)
	board.escape = utils.SanitizeTerminal
	report := NewReportService(board, zap.NewNop())

	var buf bytes.Buffer
	n, err := report.ExportXLSX(context.Background(), &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Заявки")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Анна", rows[1][2])
	assert.Equal(t, "иск.pdf (/admin/download/f1)", rows[1][6])
	assert.Equal(t, "Tom & Jerry", rows[2][2])

	width, err := f.GetColWidth("Заявки", "E")
	require.NoError(t, err)
	assert.Equal(t, 60.0, width)
	styleID, err := f.GetCellStyle("Заявки", "A1")
	require.NoError(t, err)
	assert.NotZero(t, styleID)

	total, err := f.GetCellValue("Статистика", "B6")
	require.NoError(t, err)
	assert.Equal(t, "2", total)
}

func TestReportService_FileName(t *testing.T) {
	report := NewReportService(nil, zap.NewNop())
	assert.Equal(t, "requests_2024-05-01.xlsx", report.FileName(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
}
