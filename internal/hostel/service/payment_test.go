package service

import (
	"context"
	"testing"
	"time"

	"github.com/sharmapg/hostel/internal/hostel/domain"
	"github.com/sharmapg/hostel/internal/hostel/store"
	"github.com/stretchr/testify/require"
)

func seedResident(t *testing.T, s store.Store) domain.Resident {
	t.Helper()

	svc := &ResidentService{Store: s}
	res, err := svc.Create(context.Background(),
		"Ravi Kumar", "9876543210", "201", "Govt Engineering College",
		time.Now().UTC().AddDate(0, -1, 0), "2-sharing")
	require.NoError(t, err)
	return res
}

func TestCreatePaymentRequiresResident(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &PaymentService{Store: s}

	_, err := svc.Create(ctx, "01JUNKNOWNRESIDENT0000000000", 8500, time.Now(), "")
	require.ErrorIs(t, err, ErrUnknownResident)

	res := seedResident(t, s)
	p, err := svc.Create(ctx, res.ID, 8500, time.Now().UTC(), "")
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusPending, p.Status)
	require.Nil(t, p.PaidDate)
}

func TestUpdatePaymentStatusStampsPaidDate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &PaymentService{Store: s}
	res := seedResident(t, s)

	p, err := svc.Create(ctx, res.ID, 8500, time.Now().UTC(), "")
	require.NoError(t, err)

	// Supplied paid date is persisted as-is.
	supplied := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateStatus(ctx, p.ID, domain.PaymentStatusPaid, &supplied)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStatusPaid, updated.Status)
	require.NotNil(t, updated.PaidDate)
	require.True(t, supplied.Equal(*updated.PaidDate))

	// Reverting to pending clears the paid date.
	updated, err = svc.UpdateStatus(ctx, p.ID, domain.PaymentStatusPending, nil)
	require.NoError(t, err)
	require.Nil(t, updated.PaidDate)

	// Marking paid without a date stamps now.
	updated, err = svc.UpdateStatus(ctx, p.ID, domain.PaymentStatusPaid, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.PaidDate)
	require.WithinDuration(t, time.Now().UTC(), updated.PaidDate.UTC(), time.Minute)
}

func TestUpdatePaymentStatusValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &PaymentService{Store: s}
	res := seedResident(t, s)

	p, err := svc.Create(ctx, res.ID, 8500, time.Now().UTC(), "")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, p.ID, "refunded", nil)
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "01JMISSINGPAYMENT00000000000", domain.PaymentStatusPaid, nil)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListByResidentChecksExistence(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	svc := &PaymentService{Store: s}

	_, err := svc.ListByResident(ctx, "01JUNKNOWNRESIDENT0000000000")
	require.ErrorIs(t, err, store.ErrNotFound)

	res := seedResident(t, s)
	_, err = svc.Create(ctx, res.ID, 8500, time.Now().UTC(), "")
	require.NoError(t, err)

	list, err := svc.ListByResident(ctx, res.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
