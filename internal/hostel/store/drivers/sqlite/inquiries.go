package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sharmapg/hostel/internal/hostel/domain"
)

type inquiriesRepo struct {
	db dbtx
}

const inquiryColumns = `id, student_name, college, room_type, stay_duration,
	phone, is_handled, created_at, updated_at`

func scanInquiry(row interface{ Scan(...any) error }) (domain.Inquiry, error) {
	var (
		inq      domain.Inquiry
		duration sql.NullString
	)
	err := row.Scan(
		&inq.ID, &inq.StudentName, &inq.College, &inq.RoomType, &duration,
		&inq.Phone, &inq.IsHandled, &inq.CreatedAt, &inq.UpdatedAt,
	)
	if err != nil {
		return domain.Inquiry{}, mapNotFound(err)
	}
	inq.StayDuration = mapNullString(duration)
	return inq, nil
}

func (r *inquiriesRepo) GetInquiryByID(ctx context.Context, id string) (domain.Inquiry, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+inquiryColumns+` FROM inquiries WHERE id = ?`, id)
	return scanInquiry(row)
}

// ListInquiries returns every inquiry, newest first. Handled inquiries are
// kept; the admin panel shows them greyed out.
func (r *inquiriesRepo) ListInquiries(ctx context.Context) ([]domain.Inquiry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+inquiryColumns+` FROM inquiries ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Inquiry{}
	for rows.Next() {
		inq, err := scanInquiry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inq)
	}
	return out, rows.Err()
}

func (r *inquiriesRepo) CreateInquiry(ctx context.Context, inq domain.Inquiry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO inquiries (id, student_name, college, room_type,
			stay_duration, phone, is_handled, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inq.ID, inq.StudentName, inq.College, inq.RoomType,
		mapStringNull(inq.StayDuration), inq.Phone, inq.IsHandled,
		inq.CreatedAt, inq.UpdatedAt)
	return err
}

// MarkInquiryHandled is idempotent; marking an already-handled inquiry
// succeeds and just bumps updated_at.
func (r *inquiriesRepo) MarkInquiryHandled(ctx context.Context, id string) error {
	return requireRowAffected(r.db.ExecContext(ctx,
		`UPDATE inquiries SET is_handled = TRUE, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), id))
}
