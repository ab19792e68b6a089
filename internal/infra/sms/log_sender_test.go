package sms

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"pharmacy/config"
	"pharmacy/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSender_Send(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		wantCode   bool
		wantMasked string
	}{
		{"develop reveals code", constants.EnvDevelop, true, "*******4567"},
		{"production hides code", constants.EnvProduction, false, "*******4567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Env = tt.env

			sender := NewLogSender(cfg, logger)
			require.NoError(t, sender.Send(context.Background(), "09121234567", "482913"))

			out := buf.String()
			assert.Contains(t, out, tt.wantMasked)
			assert.NotContains(t, out, "09121234567")
			assert.Equal(t, tt.wantCode, bytes.Contains(buf.Bytes(), []byte("482913")))
		})
	}
}

func TestMaskPhone_Short(t *testing.T) {
	assert.Equal(t, "123", maskPhone("123"))
}
