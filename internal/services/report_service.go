package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"request-board/pkg/constants"
)

const (
	requestsSheet = "Заявки"
	statsSheet    = "Статистика"
)

var reportHeaders = []string{
	"ID", "Дата", "Имя", "Телефон", "Сообщение", "Статус", "Документы", "ID пользователя",
}

type ReportServiceInterface interface {
	ExportXLSX(ctx context.Context, w io.Writer) (int, error)
	FileName(now time.Time) string
}

type reportService struct {
	board  BoardServiceInterface
	logger *zap.Logger
}

// NewReportService ожидает доску, собранную с экранированием для терминала:
// ячейки Excel не разметка.
func NewReportService(board BoardServiceInterface, logger *zap.Logger) ReportServiceInterface {
	return &reportService{board: board, logger: logger.Named("report")}
}

func (s *reportService) FileName(now time.Time) string {
	return fmt.Sprintf("requests_%s.xlsx", now.Format("2006-01-02"))
}

// ExportXLSX делает один цикл опроса и выгружает его результат.
func (s *reportService) ExportXLSX(ctx context.Context, w io.Writer) (int, error) {
	if err := s.board.Refresh(ctx); err != nil {
		return 0, fmt.Errorf("не удалось получить заявки для выгрузки: %w", err)
	}
	snapshot := s.board.View()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", requestsSheet); err != nil {
		return 0, err
	}
	if err := f.SetSheetRow(requestsSheet, "A1", &reportHeaders); err != nil {
		return 0, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(requestsSheet, "A1", "H1", style); err != nil {
		return 0, err
	}

	for i, row := range snapshot.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := rowToSlice(row)
		if err := f.SetSheetRow(requestsSheet, cell, &values); err != nil {
			return 0, err
		}
	}
	for _, w := range []struct {
		from, to string
		width    float64
	}{{"B", "D", 20}, {"E", "E", 60}, {"G", "G", 40}} {
		if err := f.SetColWidth(requestsSheet, w.from, w.to, w.width); err != nil {
			return 0, err
		}
	}

	if _, err := f.NewSheet(statsSheet); err != nil {
		return 0, err
	}
	c := snapshot.Counts
	stats := [][]interface{}{
		{"Статус", "Количество"},
		{constants.StatusNew, c.New},
		{constants.StatusInWork, c.InWork},
		{constants.StatusDone, c.Done},
		{"другие", c.Unknown},
		{"всего", c.Total},
	}
	for i, line := range stats {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(statsSheet, cell, &line); err != nil {
			return 0, err
		}
	}
	if err := f.SetCellStyle(statsSheet, "A1", "B1", style); err != nil {
		return 0, err
	}

	if err := f.Write(w); err != nil {
		return 0, fmt.Errorf("ошибка записи XLSX: %w", err)
	}

	s.logger.Info("Выгрузка сформирована", zap.Int("rows", len(snapshot.Rows)))
	return len(snapshot.Rows), nil
}

func rowToSlice(row RowView) []interface{} {
	docs := make([]string, 0, len(row.Documents))
	for _, d := range row.Documents {
		docs = append(docs, fmt.Sprintf("%s (%s)", d.Label, d.Href))
	}
	return []interface{}{
		row.ID.String(), row.CreatedAt, row.Name, row.Phone, row.Message,
		row.Status, strings.Join(docs, "\n"), row.ReplyUserID.String(),
	}
}
