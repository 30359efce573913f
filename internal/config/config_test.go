package config

import (
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("APP_DEBUG", "true")
		t.Setenv("SESSION_SECRET", "session-secret")
		t.Setenv("SESSION_TTL", "30m")
		t.Setenv("CSRF_SECRET", "csrf-secret")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.True(t, cfg.AppDebug)
		assert.Equal(t, "session-secret", cfg.SessionSecret)
		assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
		assert.Equal(t, "csrf-secret", cfg.CSRFSecret)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("APP_PORT", "")
		t.Setenv("APP_DEBUG", "")
		t.Setenv("SESSION_SECRET", "only-session")
		t.Setenv("SESSION_TTL", "")
		t.Setenv("CSRF_SECRET", "")

		cfg := LoadConfig()

		assert.Equal(t, "8080", cfg.AppPort)
		assert.False(t, cfg.AppDebug)
		assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
		assert.Equal(t, "only-session", cfg.CSRFSecret)
	})
}

func TestLoadConfig_MissingSessionSecret(t *testing.T) {
	if os.Getenv("CONFIG_EXIT") == "1" {
		LoadConfig()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestLoadConfig_MissingSessionSecret$")
	cmd.Env = append(os.Environ(), "CONFIG_EXIT=1", "DB_HOST=localhost", "SESSION_SECRET=")
	err := cmd.Run()

	var exitErr *exec.ExitError
	if assert.ErrorAs(t, err, &exitErr) {
		assert.False(t, exitErr.Success())
	}
}
