package domain

import "time"

// Resident is a student currently or formerly staying at the hostel.
// Residents are never hard-deleted: IsActive=false marks them as moved out
// while keeping payment history intact.
type Resident struct {
	ID          string
	Name        string
	Mobile      string
	RoomNumber  string
	College     string
	JoiningDate time.Time
	RoomType    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ResidentUpdate carries a partial update. Nil fields are left untouched.
type ResidentUpdate struct {
	Name        *string
	Mobile      *string
	RoomNumber  *string
	College     *string
	JoiningDate *time.Time
	RoomType    *string
}
