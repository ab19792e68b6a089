// Package sms delivers one-time login codes.
package sms

import (
	"context"
	"log/slog"

	"pharmacy/config"
	"pharmacy/internal/domain/constants"
	"pharmacy/internal/domain/service"
)

type logSender struct {
	logger     *slog.Logger
	revealCode bool
}

// NewLogSender returns an OTPSender that writes codes to the log. Codes are only
// revealed outside production.
func NewLogSender(cfg *config.Config, logger *slog.Logger) service.OTPSender {
	return &logSender{
		logger:     logger,
		revealCode: cfg.Env.Env != constants.EnvProduction,
	}
}

func (s *logSender) Send(ctx context.Context, phone, code string) error {
	attrs := []any{slog.String("phone", maskPhone(phone))}
	if s.revealCode {
		attrs = append(attrs, slog.String("code", code))
	}
	s.logger.InfoContext(ctx, "[LogSMS] OTP code issued", attrs...)

	return nil
}

// maskPhone keeps the last four digits.
func maskPhone(phone string) string {
	const visible = 4
	if len(phone) <= visible {
		return phone
	}

	masked := make([]byte, len(phone))
	for i := range phone {
		if i < len(phone)-visible {
			masked[i] = '*'
		} else {
			masked[i] = phone[i]
		}
	}

	return string(masked)
}
