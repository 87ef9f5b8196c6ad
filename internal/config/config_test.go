package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/analog-clock/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"KeyringService", config.KeyringService},
		{"ICalProdid", config.ICalProdid},
		{"DescribeModel", config.DescribeModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

func TestClockBounds(t *testing.T) {
	assert.Equal(t, 23, config.MaxHours)
	assert.Equal(t, 59, config.MaxMinutes)
	assert.Equal(t, time.Second, config.TickPeriod, "Live clock must tick once per second")
}

func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Analog-Clock/"))
}

func TestTimeoutsAndRoutes(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.DescribeTimeout, 0*time.Second)
	assert.LessOrEqual(t, config.DescribeTimeout, time.Minute, "a decorative request should not hang the button for long")
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second)

	assert.True(t, strings.HasPrefix(config.RouteState, "/"))
	assert.True(t, strings.HasPrefix(config.RouteICal, "/"))
	assert.NotEqual(t, config.RouteState, config.RouteICal)
}
