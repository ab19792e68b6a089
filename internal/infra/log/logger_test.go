package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"pharmacy/config"
	"pharmacy/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(env, level string) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = env
	cfg.Env.ServiceName = "pharmacy-api"
	cfg.Env.Log.Level = level

	return cfg
}

func TestNewLogger_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, newTestConfig(constants.EnvProduction, "info"))
	require.NoError(t, err)

	logger.Info("device registered",
		slog.String("fcm_token", "f00-bar"),
		slog.String("refresh_token", "r3fr3sh"),
		slog.String("phone", "+15551234567"),
	)

	out := buf.String()
	assert.NotContains(t, out, "f00-bar")
	assert.NotContains(t, out, "r3fr3sh")
	assert.NotContains(t, out, "+15551234567")
	assert.Contains(t, out, `"phone":"********4567"`)
	assert.Contains(t, out, `"service":"pharmacy-api"`)
}

func TestNewLogger_KeepsPhoneInDevelop(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, newTestConfig(constants.EnvDevelop, "debug"))
	require.NoError(t, err)

	logger.Debug("otp sent", slog.String("phone", "+15551234567"), slog.String("code", "123456"))

	assert.Contains(t, buf.String(), "+15551234567")
	assert.Contains(t, buf.String(), `"code":"123456"`)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
