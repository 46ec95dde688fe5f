package services

import (
	"context"

	"go.uber.org/zap"

	svc "goforum/internal/forum/ports/services"
	"goforum/pkg/logger"
)

// LogEmailSender пишет письма в лог вместо отправки.
// Используется в development-окружении; боевой транспорт внедряется снаружи.
type LogEmailSender struct{}

// NewLogEmailSender создает новый экземпляр логирующего отправителя.
func NewLogEmailSender() svc.EmailSender {
	return &LogEmailSender{}
}

// Send логирует письмо и всегда успешен.
func (s *LogEmailSender) Send(ctx context.Context, to, htmlBody string) error {
	logger.Log(ctx).Info(ctx, "sending email",
		zap.String("to", to),
		zap.String("body", htmlBody))
	return nil
}
