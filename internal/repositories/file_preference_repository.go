package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"request-board/internal/entities"
)

// FilePreferenceRepository хранит настройки в YAML-файле рядом с оператором.
type FilePreferenceRepository struct {
	path string
	mu   sync.Mutex
}

func NewFilePreferenceRepository(path string) PreferenceRepositoryInterface {
	return &FilePreferenceRepository{path: path}
}

func (r *FilePreferenceRepository) LoadTheme(ctx context.Context) (entities.Theme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefs, err := r.read()
	if err != nil {
		return entities.ThemeLight, err
	}
	return entities.ParseTheme(string(prefs.Theme)), nil
}

func (r *FilePreferenceRepository) SaveTheme(ctx context.Context, theme entities.Theme) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefs, err := r.read()
	if err != nil {
		// Битый файл перезаписываем целиком.
		prefs = entities.Preferences{}
	}
	prefs.Theme = theme

	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("ошибка сериализации настроек: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("не удалось создать директорию настроек: %w", err)
		}
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("не удалось записать настройки: %w", err)
	}
	return os.Rename(tmp, r.path)
}

func (r *FilePreferenceRepository) read() (entities.Preferences, error) {
	var prefs entities.Preferences
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return prefs, fmt.Errorf("не удалось прочитать настройки: %w", err)
	}
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return prefs, fmt.Errorf("настройки повреждены: %w", err)
	}
	return prefs, nil
}
