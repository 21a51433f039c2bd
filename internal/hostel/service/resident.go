package service

import (
	"context"
	"time"

	"github.com/sharmapg/hostel/internal/hostel/domain"
	"github.com/sharmapg/hostel/internal/hostel/store"
	"github.com/sharmapg/hostel/pkg/idx"
)

type ResidentService struct {
	Store store.Store
}

// ListActive returns all residents still staying at the hostel, newest first.
func (s *ResidentService) ListActive(ctx context.Context) ([]domain.Resident, error) {
	return s.Store.Residents().ListActiveResidents(ctx)
}

// Get fetches a resident by ID, active or not.
func (s *ResidentService) Get(ctx context.Context, id string) (domain.Resident, error) {
	return s.Store.Residents().GetResidentByID(ctx, id)
}

// Create registers a new resident and returns the stored record.
func (s *ResidentService) Create(
	ctx context.Context,
	name, mobile, roomNumber, college string,
	joiningDate time.Time,
	roomType string,
) (domain.Resident, error) {
	now := time.Now().UTC()
	res := domain.Resident{
		ID:          idx.New().String(),
		Name:        name,
		Mobile:      mobile,
		RoomNumber:  roomNumber,
		College:     college,
		JoiningDate: joiningDate,
		RoomType:    roomType,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Residents().CreateResident(ctx, res); err != nil {
		return domain.Resident{}, err
	}
	return res, nil
}

// Update applies a partial update and returns the refreshed record.
func (s *ResidentService) Update(ctx context.Context, id string, upd domain.ResidentUpdate) (domain.Resident, error) {
	if err := s.Store.Residents().UpdateResident(ctx, id, upd); err != nil {
		return domain.Resident{}, err
	}
	return s.Store.Residents().GetResidentByID(ctx, id)
}

// Delete soft-deletes a resident. Their record and payment history stay in
// the database; they just leave the active roster.
func (s *ResidentService) Delete(ctx context.Context, id string) error {
	return s.Store.Residents().SoftDeleteResident(ctx, id)
}
