package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/sharmapg/hostel/internal/hostel/domain"
)

type residentsRepo struct {
	db dbtx
}

const residentColumns = `id, name, mobile, room_number, college, joining_date,
	room_type, is_active, created_at, updated_at`

func scanResident(row interface{ Scan(...any) error }) (domain.Resident, error) {
	var res domain.Resident
	err := row.Scan(
		&res.ID, &res.Name, &res.Mobile, &res.RoomNumber, &res.College,
		&res.JoiningDate, &res.RoomType, &res.IsActive, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return domain.Resident{}, mapNotFound(err)
	}
	return res, nil
}

func (r *residentsRepo) GetResidentByID(ctx context.Context, id string) (domain.Resident, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+residentColumns+` FROM residents WHERE id = ?`, id)
	return scanResident(row)
}

func (r *residentsRepo) ListActiveResidents(ctx context.Context) ([]domain.Resident, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+residentColumns+` FROM residents WHERE is_active = TRUE ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Resident{}
	for rows.Next() {
		res, err := scanResident(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *residentsRepo) CreateResident(ctx context.Context, res domain.Resident) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO residents (id, name, mobile, room_number, college,
			joining_date, room_type, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID, res.Name, res.Mobile, res.RoomNumber, res.College,
		res.JoiningDate, res.RoomType, res.IsActive, res.CreatedAt, res.UpdatedAt)
	return err
}

// UpdateResident builds the SET clause from the non-nil fields of upd.
// Nothing to update is not an error; updated_at still gets bumped.
func (r *residentsRepo) UpdateResident(ctx context.Context, id string, upd domain.ResidentUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Mobile != nil {
		sets = append(sets, "mobile = ?")
		args = append(args, *upd.Mobile)
	}
	if upd.RoomNumber != nil {
		sets = append(sets, "room_number = ?")
		args = append(args, *upd.RoomNumber)
	}
	if upd.College != nil {
		sets = append(sets, "college = ?")
		args = append(args, *upd.College)
	}
	if upd.JoiningDate != nil {
		sets = append(sets, "joining_date = ?")
		args = append(args, *upd.JoiningDate)
	}
	if upd.RoomType != nil {
		sets = append(sets, "room_type = ?")
		args = append(args, *upd.RoomType)
	}

	args = append(args, id)
	return requireRowAffected(r.db.ExecContext(ctx,
		`UPDATE residents SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...))
}

func (r *residentsRepo) SoftDeleteResident(ctx context.Context, id string) error {
	return requireRowAffected(r.db.ExecContext(ctx,
		`UPDATE residents SET is_active = FALSE, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), id))
}
