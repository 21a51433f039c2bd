package sqlite

import (
	"context"

	"github.com/sharmapg/hostel/internal/hostel/domain"
)

type roomStatusRepo struct {
	db dbtx
}

const roomStatusColumns = `id, room_type, total_rooms, occupied_rooms, updated_at`

func scanRoomStatus(row interface{ Scan(...any) error }) (domain.RoomStatus, error) {
	var rs domain.RoomStatus
	err := row.Scan(&rs.ID, &rs.RoomType, &rs.TotalRooms, &rs.OccupiedRooms, &rs.UpdatedAt)
	if err != nil {
		return domain.RoomStatus{}, mapNotFound(err)
	}
	return rs, nil
}

func (r *roomStatusRepo) ListRoomStatus(ctx context.Context) ([]domain.RoomStatus, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roomStatusColumns+` FROM room_status ORDER BY room_type ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.RoomStatus{}
	for rows.Next() {
		rs, err := scanRoomStatus(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rs)
	}
	return out, rows.Err()
}

func (r *roomStatusRepo) GetRoomStatusByType(ctx context.Context, roomType string) (domain.RoomStatus, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roomStatusColumns+` FROM room_status WHERE room_type = ?`, roomType)
	return scanRoomStatus(row)
}

// UpsertRoomStatus inserts a row for a new room type or updates the counts of
// an existing one. The existing row keeps its original id; rs.ID is only used
// on first insert.
func (r *roomStatusRepo) UpsertRoomStatus(ctx context.Context, rs domain.RoomStatus) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO room_status (id, room_type, total_rooms, occupied_rooms, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (room_type) DO UPDATE SET
			total_rooms = excluded.total_rooms,
			occupied_rooms = excluded.occupied_rooms,
			updated_at = excluded.updated_at`,
		rs.ID, rs.RoomType, rs.TotalRooms, rs.OccupiedRooms, rs.UpdatedAt)
	return err
}
