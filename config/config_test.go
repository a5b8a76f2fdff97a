package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "操作失败"
	testErr := errors.New("internal database error")

	// nil err 返回 fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release 模式返回 fallback，不暴露错误详情
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// debug 模式返回 err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// GlobalConfig 为 nil 时返回 err.Error()（视为开发环境）
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, 5, cfg.Dashboard.RecentLimit)
	assert.Equal(t, time.Minute, cfg.Auth.LoginWindow())
	assert.Same(t, cfg, GlobalConfig)
}

func TestLoadConfig_ExternalFileOverrides(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("database:\n  driver: postgres\n  port: \"5432\"\ndashboard:\n  recent_limit: 10\njwt:\n  expire_hours: 2\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 10, cfg.Dashboard.RecentLimit)
	assert.Equal(t, 2*time.Hour, cfg.JWT.ExpireTime)
	// 未覆盖的键保持内置值
	assert.Equal(t, "budget", cfg.Database.DBName)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	t.Setenv("BUDGET_SERVER_MODE", "release")
	t.Setenv("BUDGET_AUTH_REQUIRE_EMAIL_CONFIRMATION", "true")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "release", cfg.Server.Mode)
	assert.True(t, cfg.Auth.RequireEmailConfirmation)
}
