package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const pollJobName = "board poll"

// Refresher - то, что умеет перечитать доску. Реализуется BoardService.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// PollDriver запускает цикл опроса с фиксированным интервалом.
// Первый цикл выполняется сразу при старте. Циклы не сериализуются:
// если ответ запаздывает, следующий тик уходит без ожидания, а доска
// применяет только последний отправленный запрос.
type PollDriver struct {
	board     Refresher
	interval  time.Duration
	scheduler gocron.Scheduler
	logger    *zap.Logger
}

func NewPollDriver(board Refresher, interval time.Duration, logger *zap.Logger) *PollDriver {
	return &PollDriver{
		board:    board,
		interval: interval,
		logger:   logger.Named("poll"),
	}
}

func (d *PollDriver) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		return fmt.Errorf("не удалось создать планировщик: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(d.interval),
		gocron.NewTask(func() error { return d.board.Refresh(ctx) }),
		gocron.WithName(pollJobName),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithEventListeners(
			gocron.AfterJobRunsWithError(func(jobID uuid.UUID, jobName string, err error) {
				d.logger.Debug("Цикл опроса с ошибкой", zap.String("job", jobName), zap.Error(err))
			}),
		),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return fmt.Errorf("не удалось зарегистрировать опрос: %w", err)
	}

	d.scheduler = scheduler
	scheduler.Start()
	d.logger.Info("Опрос запущен", zap.Duration("interval", d.interval))
	return nil
}

// Stop останавливает опрос. Уже отправленные запросы не отменяются,
// их результат просто не будет запрошен повторно.
func (d *PollDriver) Stop() error {
	if d.scheduler == nil {
		return nil
	}
	err := d.scheduler.Shutdown()
	d.scheduler = nil
	if err != nil {
		return fmt.Errorf("ошибка остановки планировщика: %w", err)
	}
	d.logger.Info("Опрос остановлен")
	return nil
}
