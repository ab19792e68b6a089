package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"pharmacy/config"
	"pharmacy/internal/domain/constants"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const redacted = "[REDACTED]"

// secretKeys are attribute keys whose values never reach the log output.
var secretKeys = map[string]struct{}{
	"authorization": {},
	"access_token":  {},
	"refresh_token": {},
	"token":         {},
	"fcm_token":     {},
	"password":      {},
}

type Params struct {
	fx.In

	Config *config.Config
}

// New builds the process logger from the env section of the config.
func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config)
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   cfg.Env.Debug,
		ReplaceAttr: scrubber(cfg.Env.Env != constants.EnvDevelop),
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if name := cfg.Env.ServiceName; name != "" {
		logger = logger.With(slog.String("service", name))
	}

	return logger, nil
}

// scrubber hides credentials everywhere and, when maskPhones is set, all but
// the last four digits of phone numbers.
func scrubber(maskPhones bool) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		key := strings.ToLower(a.Key)
		if _, ok := secretKeys[key]; ok {
			return slog.String(a.Key, redacted)
		}
		if maskPhones && key == "phone" && a.Value.Kind() == slog.KindString {
			return slog.String(a.Key, maskPhone(a.Value.String()))
		}

		return a
	}
}

func maskPhone(phone string) string {
	const visible = 4
	if len(phone) <= visible {
		return strings.Repeat("*", len(phone))
	}

	return strings.Repeat("*", len(phone)-visible) + phone[len(phone)-visible:]
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
