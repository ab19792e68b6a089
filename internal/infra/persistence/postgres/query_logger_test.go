package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"pharmacy/config"
	deliverycontext "pharmacy/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func fixedQuery(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestQueryLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "fast query hidden", elapsed: time.Millisecond},
		{name: "fast query in debug", debug: true, elapsed: time.Millisecond, want: `"msg":"query"`},
		{name: "slow query", elapsed: slowQueryThreshold + 50*time.Millisecond, want: `"msg":"slow query"`},
		{name: "failure", elapsed: time.Millisecond, err: errors.New("deadlock detected"), want: `"msg":"query failed"`},
		{name: "record not found ignored", elapsed: time.Millisecond, err: gorm.ErrRecordNotFound},
		{name: "cancellation ignored", elapsed: time.Millisecond, err: errors.Wrap(context.Canceled, "select")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			l := newQueryLogger(base, cfg)
			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), fixedQuery("SELECT 1"), tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	reqLogger := slog.New(slog.NewJSONHandler(&buf, nil)).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l := newQueryLogger(slog.New(slog.DiscardHandler), &config.Config{})
	l.Trace(ctx, time.Now(), fixedQuery("UPDATE product_variants SET stock = stock - 1"), errors.New("boom"))

	assert.Contains(t, buf.String(), `"request_id":"req-9"`)
}

func TestQueryLogger_TruncatesLongSQL(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	l := newQueryLogger(base, &config.Config{}).LogMode(logger.Info)
	l.Trace(context.Background(), time.Now(), fixedQuery("SELECT "+strings.Repeat("x", 3*maxLoggedSQLLength)), errors.New("boom"))

	assert.Contains(t, buf.String(), `..."`)
	assert.Less(t, buf.Len(), 3*maxLoggedSQLLength)
}
