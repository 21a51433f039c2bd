package domain

import "time"

// RoomStatus tracks occupancy per room type ("2-sharing", "3-sharing", ...).
// There is exactly one row per room type; writes are upserts keyed on it.
//
// OccupiedRooms <= TotalRooms is not enforced anywhere. The source system
// never did, and the admin panel treats the counts as free-form inventory
// numbers.
type RoomStatus struct {
	ID            string
	RoomType      string
	TotalRooms    int
	OccupiedRooms int
	UpdatedAt     time.Time
}
