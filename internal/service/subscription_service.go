package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanushArun/Yasodha-pg-website/internal/model"
)

// subscriptionServiceImpl is the production implementation of SubscriptionService.
type subscriptionServiceImpl struct {
	store RecordStore
}

// NewSubscriptionService creates a SubscriptionService backed by the given store.
func NewSubscriptionService(store RecordStore) SubscriptionService {
	return &subscriptionServiceImpl{store: store}
}

// Subscribe checks existing rows for the email and appends a subscription
// record when it is new. A failed duplicate check is logged and treated
// as "not yet subscribed" rather than blocking the signup.
func (s *subscriptionServiceImpl) Subscribe(ctx context.Context, email string) (bool, error) {
	emails, err := s.store.ListEmails(ctx)
	if err != nil {
		slog.Warn("duplicate subscription check failed", "error", err)
	} else {
		for _, existing := range emails {
			if existing == email {
				return true, nil
			}
		}
	}

	rec := model.NewSubscriptionRecord(email, time.Now())
	if err := s.store.SaveRecord(ctx, rec); err != nil {
		return false, err
	}
	slog.Info("newsletter subscription saved", "email", email)
	return false, nil
}
