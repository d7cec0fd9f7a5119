package service

import (
	"context"

	"github.com/DanushArun/Yasodha-pg-website/internal/model"
)

// RecordStore is what the services need from the storage coordinator.
// Narrowed here so tests can substitute fakes.
type RecordStore interface {
	SaveRecord(ctx context.Context, rec model.Record) error
	ListEmails(ctx context.Context) ([]string, error)
}

// InquiryService defines the business logic for booking inquiries.
type InquiryService interface {
	// Submit stamps the inquiry with the current date and time and
	// records it durably.
	Submit(ctx context.Context, inq *model.Inquiry) error
}

// SubscriptionService defines the business logic for newsletter signups.
type SubscriptionService interface {
	// Subscribe records the email unless it is already stored. The
	// bool reports "was already subscribed"; in that case nothing is
	// written.
	Subscribe(ctx context.Context, email string) (bool, error)
}
