package repositories

import (
	"context"

	"request-board/internal/entities"
)

type PreferenceRepositoryInterface interface {
	LoadTheme(ctx context.Context) (entities.Theme, error)
	SaveTheme(ctx context.Context, theme entities.Theme) error
}
