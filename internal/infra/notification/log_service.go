package notification

import (
	"context"
	"log/slog"

	"pharmacy/internal/domain/service"
)

type logService struct {
	logger *slog.Logger
}

// NewLogService returns a NotificationService that only logs, used when Firebase is not configured.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendMulticast(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.MulticastResult, error) {
	s.logger.InfoContext(ctx, "[LogNotification] Push notification",
		slog.Int("tokens", len(tokens)),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
	)

	return &service.MulticastResult{SuccessCount: len(tokens)}, nil
}
