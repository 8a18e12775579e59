package marketing

import (
	"context"
	"net/mail"
	"strings"

	"github.com/lowkeylegends/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
)

// Service manages newsletter subscriptions. Email is the subscriber key; the
// optional user id links a subscription to an account.
type Service interface {
	Subscribe(ctx context.Context, email string, userID int64) error
	Unsubscribe(ctx context.Context, email string) error
}

type service struct {
	repo SubscriberRepository
}

func NewService(repo SubscriberRepository) Service {
	return &service{repo: repo}
}

func (s *service) Subscribe(ctx context.Context, email string, userID int64) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	sub := &models.MarketingSubscriber{Email: normalized, Subscribed: true}
	if userID != 0 {
		sub.UserID = &userID
	}
	if err := s.repo.Upsert(ctx, sub); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to subscribe")
	}
	return nil
}

// Unsubscribe soft-deletes the subscription. Unknown emails are treated as
// already unsubscribed.
func (s *service) Unsubscribe(ctx context.Context, email string) error {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	if _, err := s.repo.SetSubscribed(ctx, normalized, false); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to unsubscribe")
	}
	return nil
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid email address")
	}
	return normalized, nil
}
