package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanushArun/Yasodha-pg-website/internal/model"
)

// inquiryServiceImpl is the production implementation of InquiryService.
type inquiryServiceImpl struct {
	store RecordStore
}

// NewInquiryService creates an InquiryService backed by the given store.
func NewInquiryService(store RecordStore) InquiryService {
	return &inquiryServiceImpl{store: store}
}

// Submit formats the inquiry into the canonical row and appends it.
func (s *inquiryServiceImpl) Submit(ctx context.Context, inq *model.Inquiry) error {
	rec := model.NewRecord(inq, time.Now())
	if err := s.store.SaveRecord(ctx, rec); err != nil {
		return err
	}
	slog.Info("inquiry saved", "name", inq.Name, "email", inq.Email)
	return nil
}
