package service

import (
	"context"
	"time"

	"github.com/sharmapg/hostel/internal/hostel/domain"
	"github.com/sharmapg/hostel/internal/hostel/store"
	"github.com/sharmapg/hostel/pkg/idx"
)

type RoomStatusService struct {
	Store store.Store
}

// List returns the occupancy summary for every room type.
func (s *RoomStatusService) List(ctx context.Context) ([]domain.RoomStatus, error) {
	return s.Store.RoomStatus().ListRoomStatus(ctx)
}

// Upsert creates or updates the occupancy row for a room type and returns
// the stored record. OccupiedRooms may exceed TotalRooms; the counts are
// free-form inventory numbers.
func (s *RoomStatusService) Upsert(
	ctx context.Context,
	roomType string,
	totalRooms, occupiedRooms int,
) (domain.RoomStatus, error) {
	rs := domain.RoomStatus{
		ID:            idx.New().String(),
		RoomType:      roomType,
		TotalRooms:    totalRooms,
		OccupiedRooms: occupiedRooms,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := s.Store.RoomStatus().UpsertRoomStatus(ctx, rs); err != nil {
		return domain.RoomStatus{}, err
	}

	// Re-read so an update returns the row's original id.
	return s.Store.RoomStatus().GetRoomStatusByType(ctx, roomType)
}
