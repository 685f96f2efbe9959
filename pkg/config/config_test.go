package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "REDIS_ADDR", "STATUS_RATE_LIMIT", "METRICS_ENABLED", "SUPER_ADMIN_EMAILS"} {
		t.Setenv(key, "")
	}

	require.NoError(t, Load())

	assert.Equal(t, "8080", AppConfig.Server.Port)
	assert.Equal(t, "./menuhub.db", AppConfig.Database.Path)
	assert.False(t, AppConfig.Redis.Enabled())
	assert.Equal(t, 5.0, AppConfig.RateLimit.PerSecond)
	assert.True(t, AppConfig.Metrics.Enabled)
	assert.Empty(t, AppConfig.OAuth.SuperAdminEmails)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("STATUS_RATE_LIMIT", "0.5")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SNAPSHOT_INTERVAL_SECONDS", "not-a-number")
	t.Setenv("SUPER_ADMIN_EMAILS", " Admin@Example.com, ,ops@example.com")

	require.NoError(t, Load())

	assert.Equal(t, "9090", AppConfig.Server.Port)
	assert.True(t, AppConfig.Redis.Enabled())
	assert.Equal(t, 2, AppConfig.Redis.DB)
	assert.Equal(t, 0.5, AppConfig.RateLimit.PerSecond)
	assert.False(t, AppConfig.Metrics.Enabled)
	assert.Equal(t, 60, AppConfig.Snapshot.IntervalSeconds)
	assert.Equal(t, []string{"admin@example.com", "ops@example.com"}, AppConfig.OAuth.SuperAdminEmails)
}
