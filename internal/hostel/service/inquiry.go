package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/sharmapg/hostel/internal/hostel/domain"
	"github.com/sharmapg/hostel/internal/hostel/store"
	"github.com/sharmapg/hostel/pkg/idx"
	"github.com/sharmapg/hostel/pkg/slogx"
)

type InquiryService struct {
	Store store.Store
}

// Create records a public contact-form submission.
func (s *InquiryService) Create(
	ctx context.Context,
	studentName, college, roomType, stayDuration, phone string,
) (domain.Inquiry, error) {
	now := time.Now().UTC()
	inq := domain.Inquiry{
		ID:           idx.New().String(),
		StudentName:  studentName,
		College:      college,
		RoomType:     roomType,
		StayDuration: stayDuration,
		Phone:        phone,
		IsHandled:    false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Inquiries().CreateInquiry(ctx, inq); err != nil {
		return domain.Inquiry{}, err
	}

	slogx.FromContext(ctx).Info("inquiry received",
		slog.String("inquiry_id", inq.ID),
		slog.String("room_type", inq.RoomType),
	)
	return inq, nil
}

// List returns every inquiry, newest first.
func (s *InquiryService) List(ctx context.Context) ([]domain.Inquiry, error) {
	return s.Store.Inquiries().ListInquiries(ctx)
}

// MarkHandled flags an inquiry as followed-up and returns the updated record.
// Re-marking an already-handled inquiry succeeds.
func (s *InquiryService) MarkHandled(ctx context.Context, id string) (domain.Inquiry, error) {
	if err := s.Store.Inquiries().MarkInquiryHandled(ctx, id); err != nil {
		return domain.Inquiry{}, err
	}
	return s.Store.Inquiries().GetInquiryByID(ctx, id)
}
