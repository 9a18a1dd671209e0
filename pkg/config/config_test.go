package config

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	for _, key := range []string{"ADMIN_BASE_URL", "POLL_INTERVAL", "PREFS_BACKEND", "ADMIN_TIMEOUT"} {
		t.Setenv(key, "")
	}
	t.Setenv("ADMIN_BASE_URL", "http://localhost:8000")
	t.Setenv("POLL_INTERVAL", "5s")
	t.Setenv("PREFS_BACKEND", "file")
	t.Setenv("ADMIN_TIMEOUT", "20s")

	cfg := New()
	assert.Equal(t, "http://localhost:8000", cfg.Admin.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Poll.Interval)
	assert.Equal(t, 20*time.Second, cfg.Admin.Timeout)
	assert.Equal(t, "file", cfg.Prefs.Backend)
	require.NoError(t, cfg.Validate(validator.New()))
}

func TestNew_BadDurationFallsBack(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "каждые пять секунд")
	cfg := New()
	assert.Equal(t, 5*time.Second, cfg.Poll.Interval)
}

func TestValidate_RejectsUnknownPrefsBackend(t *testing.T) {
	t.Setenv("PREFS_BACKEND", "sqlite")
	cfg := New()
	assert.Error(t, cfg.Validate(validator.New()))
}

func TestValidate_RejectsBadBaseURL(t *testing.T) {
	t.Setenv("ADMIN_BASE_URL", "не адрес")
	t.Setenv("PREFS_BACKEND", "file")
	cfg := New()
	assert.Error(t, cfg.Validate(validator.New()))
}
