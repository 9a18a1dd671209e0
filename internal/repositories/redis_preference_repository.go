package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"request-board/internal/entities"
)

// RedisPreferenceRepository хранит настройки оператора в Redis, чтобы тема
// следовала за оператором между рабочими местами.
type RedisPreferenceRepository struct {
	client     *redis.Client
	operatorID string
}

func NewRedisPreferenceRepository(client *redis.Client, operatorID string) PreferenceRepositoryInterface {
	return &RedisPreferenceRepository{client: client, operatorID: operatorID}
}

func (r *RedisPreferenceRepository) themeKey() string {
	return fmt.Sprintf("request-board:prefs:%s:theme", r.operatorID)
}

// LoadTheme возвращает светлую тему, если ключа ещё нет.
func (r *RedisPreferenceRepository) LoadTheme(ctx context.Context) (entities.Theme, error) {
	value, err := r.client.Get(ctx, r.themeKey()).Result()
	if errors.Is(err, redis.Nil) {
		return entities.ThemeLight, nil
	}
	if err != nil {
		return entities.ThemeLight, fmt.Errorf("не удалось прочитать тему из Redis: %w", err)
	}
	return entities.ParseTheme(value), nil
}

// SaveTheme сохраняет тему без срока жизни.
func (r *RedisPreferenceRepository) SaveTheme(ctx context.Context, theme entities.Theme) error {
	if err := r.client.Set(ctx, r.themeKey(), string(theme), 0).Err(); err != nil {
		return fmt.Errorf("не удалось сохранить тему в Redis: %w", err)
	}
	return nil
}
