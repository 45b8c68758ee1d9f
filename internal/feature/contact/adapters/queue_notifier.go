package adapters

import (
	"context"
	"time"

	"wealth_backend/internal/feature/contact/domain/entity"
	"wealth_backend/internal/feature/contact/usecase"
)

// JobTypeContactReceived identifies the job emitted for each stored contact message.
const JobTypeContactReceived = "contact_received"

// JSONPublisher publishes a JSON encodable job.
type JSONPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// ContactReceivedJob is the queue payload consumed by the notification worker.
type ContactReceivedJob struct {
	Type      string    `json:"type"`
	MessageID string    `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// queueNotifier はお問い合わせ受信をジョブキューへ流します。
type queueNotifier struct {
	pub JSONPublisher
}

var _ usecase.Notifier = (*queueNotifier)(nil)

// NewQueueNotifier wraps pub as a usecase.Notifier.
func NewQueueNotifier(pub JSONPublisher) *queueNotifier {
	return &queueNotifier{pub: pub}
}

// NotifyContactReceived publishes a contact_received job for msg.
func (n *queueNotifier) NotifyContactReceived(ctx context.Context, msg entity.ContactMessage) error {
	return n.pub.PublishJSON(ctx, ContactReceivedJob{
		Type:      JobTypeContactReceived,
		MessageID: msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
	})
}
