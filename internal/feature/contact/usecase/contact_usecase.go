package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"wealth_backend/internal/feature/contact/domain/entity"
	"wealth_backend/internal/platform/apperror"
	"wealth_backend/internal/platform/validation"
)

const (
	maxMessageLength = 5000

	// notifyTimeout bounds the best-effort notification after the message is stored.
	notifyTimeout = 3 * time.Second
)

// ContactRepository はお問い合わせの永続化層を抽象化します。
type ContactRepository interface {
	Create(ctx context.Context, msg *entity.ContactMessage) error
}

// Notifier はお問い合わせ受信を外部へ通知します。
type Notifier interface {
	NotifyContactReceived(ctx context.Context, msg entity.ContactMessage) error
}

// contactUsecase はお問い合わせ受付のビジネスロジックを実装します。
type contactUsecase struct {
	repo     ContactRepository
	notifier Notifier
	now      func() time.Time
	newID    func() string
}

// NewContactUsecase はcontactUsecaseの新しいインスタンスを生成します。
// notifier が nil の場合、通知は行いません。
func NewContactUsecase(repo ContactRepository, notifier Notifier) *contactUsecase {
	return &contactUsecase{
		repo:     repo,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// Submit validates and stores a contact message, then notifies.
// A notification failure is logged and does not fail the submission.
func (u *contactUsecase) Submit(ctx context.Context, name, email, message string) (*entity.ContactMessage, error) {
	msg := entity.ContactMessage{
		ID:        u.newID(),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Message:   strings.TrimSpace(message),
		CreatedAt: u.now(),
	}
	if err := validateMessage(msg); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, &msg); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}

	if u.notifier != nil {
		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()
		if err := u.notifier.NotifyContactReceived(nctx, msg); err != nil {
			slog.Warn("contact notification failed", "error", err, "message_id", msg.ID)
		}
	}
	return &msg, nil
}

func validateMessage(m entity.ContactMessage) error {
	switch {
	case m.Name == "":
		return invalid("name is required")
	case !validation.IsEmail(m.Email):
		return invalid("email must be a valid email address")
	case m.Message == "":
		return invalid("message is required")
	case len(m.Message) > maxMessageLength:
		return invalid(fmt.Sprintf("message must be at most %d characters long", maxMessageLength))
	}
	return nil
}

func invalid(msg string) error {
	return apperror.New(ErrInvalidContact.Kind, ErrInvalidContact.Code, msg)
}
