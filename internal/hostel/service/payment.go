package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sharmapg/hostel/internal/hostel/domain"
	"github.com/sharmapg/hostel/internal/hostel/store"
	"github.com/sharmapg/hostel/pkg/idx"
	"github.com/sharmapg/hostel/pkg/slogx"
)

var (
	ErrInvalidStatus   = errors.New("invalid payment status")
	ErrUnknownResident = errors.New("resident does not exist")
)

type PaymentService struct {
	Store store.Store
}

// List returns every payment joined with its resident, newest due first. A
// payment whose resident row has vanished is a data-integrity anomaly: it is
// logged at error level and returned with a nil Resident rather than dropped
// or faked.
func (s *PaymentService) List(ctx context.Context) ([]domain.PaymentWithResident, error) {
	l := slogx.FromContext(ctx)

	list, err := s.Store.Payments().ListPaymentsWithResidents(ctx)
	if err != nil {
		return nil, err
	}

	for _, item := range list {
		if item.Resident == nil {
			l.Error("payment references missing resident",
				slog.String("payment_id", item.ID),
				slog.String("resident_id", item.ResidentID),
			)
		}
	}
	return list, nil
}

// ListByResident returns one resident's payments, newest due first. The
// resident must exist; soft-deleted residents still count.
func (s *PaymentService) ListByResident(ctx context.Context, residentID string) ([]domain.Payment, error) {
	if _, err := s.Store.Residents().GetResidentByID(ctx, residentID); err != nil {
		return nil, err
	}
	return s.Store.Payments().ListPaymentsByResident(ctx, residentID)
}

// Create records a rent entry for an existing resident. Status defaults to
// pending.
func (s *PaymentService) Create(
	ctx context.Context,
	residentID string,
	amount float64,
	dueDate time.Time,
	status string,
) (domain.Payment, error) {
	if status == "" {
		status = domain.PaymentStatusPending
	}
	if !domain.ValidPaymentStatus(status) {
		return domain.Payment{}, ErrInvalidStatus
	}

	if _, err := s.Store.Residents().GetResidentByID(ctx, residentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Payment{}, ErrUnknownResident
		}
		return domain.Payment{}, err
	}

	now := time.Now().UTC()
	p := domain.Payment{
		ID:         idx.New().String(),
		ResidentID: residentID,
		Amount:     amount,
		DueDate:    dueDate,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if status == domain.PaymentStatusPaid {
		p.PaidDate = &now
	}

	if err := s.Store.Payments().CreatePayment(ctx, p); err != nil {
		return domain.Payment{}, err
	}
	return p, nil
}

// UpdateStatus transitions a payment's status and returns the updated record.
// Marking a payment paid stamps paidDate (supplied or now); any other status
// clears it.
func (s *PaymentService) UpdateStatus(
	ctx context.Context,
	id, status string,
	paidDate *time.Time,
) (domain.Payment, error) {
	if !domain.ValidPaymentStatus(status) {
		return domain.Payment{}, ErrInvalidStatus
	}

	var stamp *time.Time
	if status == domain.PaymentStatusPaid {
		if paidDate != nil {
			stamp = paidDate
		} else {
			now := time.Now().UTC()
			stamp = &now
		}
	}

	if err := s.Store.Payments().UpdatePaymentStatus(ctx, id, status, stamp); err != nil {
		return domain.Payment{}, err
	}
	return s.Store.Payments().GetPaymentByID(ctx, id)
}
