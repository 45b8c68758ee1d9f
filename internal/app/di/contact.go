package di

import (
	contactadapters "wealth_backend/internal/feature/contact/adapters"
	contactusecase "wealth_backend/internal/feature/contact/usecase"
	"wealth_backend/internal/platform/messaging"
)

// NewContactNotifier returns a queue backed notifier, or nil when no broker is configured.
func NewContactNotifier(pub *messaging.RabbitPublisher) contactusecase.Notifier {
	if pub == nil {
		return nil
	}
	return contactadapters.NewQueueNotifier(pub)
}
