// Файл: cmd/export/main.go

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"request-board/internal/integrations/adminapi"
	"request-board/internal/services"
	"request-board/pkg/config"
	"request-board/pkg/customvalidator"
	"request-board/pkg/eventbus"
	applogger "request-board/pkg/logger"
	"request-board/pkg/utils"
)

// Разовая выгрузка заявок в XLSX с тем же фильтром, что и на доске.
func main() {
	search := flag.String("search", "", "строка поиска")
	status := flag.String("status", "all", "фильтр статуса: all, new, inwork, done")
	flag.Parse()

	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Path, cfg.Log.Level)
	defer logger.Sync()

	v, err := customvalidator.New()
	if err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	if err := cfg.Validate(v); err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Admin.Timeout+5*time.Second)
	defer cancel()

	bus := eventbus.New(logger, time.Second)
	api := adminapi.New(cfg.Admin.BaseURL, cfg.Admin.Token, cfg.Admin.Timeout, logger)
	board := services.NewBoardService(api, bus, v, logger, services.WithEscaper(utils.SanitizeTerminal))

	// Фильтр выставляется без опроса: выгрузка сама делает один цикл.
	if err := board.ApplyFilter(*search, *status); err != nil {
		log.Fatalf("некорректный фильтр: %v", err)
	}

	report := services.NewReportService(board, logger)
	path := filepath.Join(cfg.Export.Dir, report.FileName(time.Now()))
	if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
		log.Fatalf("не удалось создать директорию выгрузки: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("не удалось создать файл: %v", err)
	}
	count, err := report.ExportXLSX(ctx, file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		logger.Error("Выгрузка не удалась", zap.Error(err))
		log.Fatalf("выгрузка не удалась: %v", err)
	}
	bus.Wait()

	log.Printf("Выгружено заявок: %d -> %s", count, path)
}
