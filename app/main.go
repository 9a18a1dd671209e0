// Файл: main.go

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"request-board/internal/cron"
	"request-board/internal/entities"
	"request-board/internal/integrations/adminapi"
	"request-board/internal/listeners"
	"request-board/internal/repositories"
	"request-board/internal/services"
	"request-board/internal/tui"
	"request-board/pkg/config"
	"request-board/pkg/constants"
	"request-board/pkg/customvalidator"
	"request-board/pkg/eventbus"
	applogger "request-board/pkg/logger"
	"request-board/pkg/utils"
)

func main() {
	// 1. Конфиг и логгер. Логи только в файл: терминал занят интерфейсом.
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Шина событий, клиент админ-API и сервисы
	bus := eventbus.New(logger, 10*time.Second)
	api := adminapi.New(cfg.Admin.BaseURL, cfg.Admin.Token, cfg.Admin.Timeout, logger)
	board := services.NewBoardService(api, bus, v, logger, services.WithEscaper(utils.SanitizeTerminal))

	notifications := services.NewNotificationService(constants.ToastTTL, logger)
	listeners.NewNotificationListener(notifications, logger).Register(bus)

	// 3. Настройки оператора
	prefs := newPreferenceRepository(ctx, cfg, logger)
	theme, err := prefs.LoadTheme(ctx)
	if err != nil {
		logger.Warn("Тема не загружена, используется светлая", zap.Error(err))
		theme = entities.ThemeLight
	}

	// 4. Интерфейс и опрос
	model := tui.NewModel(ctx, tui.Dependencies{
		Board:         board,
		Notifications: notifications,
		Prefs:         prefs,
		Logger:        logger,
	}, theme)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	tui.Bridge(bus, program)

	driver := cron.NewPollDriver(board, cfg.Poll.Interval, logger)
	if err := driver.Start(ctx); err != nil {
		logger.Fatal("Не удалось запустить опрос", zap.Error(err))
	}

	logger.Info("🚀 Доска заявок запущена", zap.String("backend", cfg.Admin.BaseURL))
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		logger.Error("Интерфейс завершился с ошибкой", zap.Error(err))
	}

	if err := driver.Stop(); err != nil {
		logger.Warn("Ошибка остановки опроса", zap.Error(err))
	}
	bus.Wait()
	logger.Info("Доска заявок остановлена")
}

// newPreferenceRepository выбирает хранилище темы. Если Redis недоступен,
// настройки пишутся в файл.
func newPreferenceRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) repositories.PreferenceRepositoryInterface {
	if cfg.Prefs.Backend != "redis" {
		return repositories.NewFilePreferenceRepository(cfg.Prefs.Path)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if _, err := redisClient.Ping(pingCtx).Result(); err != nil {
		logger.Warn("не удалось подключиться к Redis, настройки будут в файле",
			zap.Error(err), zap.String("address", cfg.Redis.Address))
		_ = redisClient.Close()
		return repositories.NewFilePreferenceRepository(cfg.Prefs.Path)
	}
	return repositories.NewRedisPreferenceRepository(redisClient, cfg.Prefs.OperatorID)
}
