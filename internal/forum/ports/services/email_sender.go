package services

import "context"

// EmailSender - внедряемая возможность отправки писем.
// Доставка вне зоны ответственности ядра.
type EmailSender interface {
	Send(ctx context.Context, to, htmlBody string) error
}
