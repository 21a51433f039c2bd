package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sharmapg/hostel/internal/hostel/domain"
)

type paymentsRepo struct {
	db dbtx
}

const paymentColumns = `id, resident_id, amount, due_date, paid_date, status,
	created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (domain.Payment, error) {
	var (
		p    domain.Payment
		paid sql.NullTime
	)
	err := row.Scan(
		&p.ID, &p.ResidentID, &p.Amount, &p.DueDate, &paid, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Payment{}, mapNotFound(err)
	}
	p.PaidDate = mapNullTimePtr(paid)
	return p, nil
}

func (r *paymentsRepo) GetPaymentByID(ctx context.Context, id string) (domain.Payment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id = ?`, id)
	return scanPayment(row)
}

// ListPaymentsWithResidents returns every payment joined to its resident,
// newest due date first. A LEFT JOIN keeps payments whose resident row has
// gone missing; those come back with a nil Resident so the caller can flag
// the anomaly instead of silently dropping the payment.
func (r *paymentsRepo) ListPaymentsWithResidents(ctx context.Context) ([]domain.PaymentWithResident, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			p.id, p.resident_id, p.amount, p.due_date, p.paid_date, p.status,
			p.created_at, p.updated_at,
			r.id, r.name, r.mobile, r.room_number, r.college, r.joining_date,
			r.room_type, r.is_active, r.created_at, r.updated_at
		FROM payments p
		LEFT JOIN residents r ON r.id = p.resident_id
		ORDER BY p.due_date DESC, p.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.PaymentWithResident{}
	for rows.Next() {
		var (
			p    domain.Payment
			paid sql.NullTime

			resID       sql.NullString
			resName     sql.NullString
			resMobile   sql.NullString
			resRoomNum  sql.NullString
			resCollege  sql.NullString
			resJoining  sql.NullTime
			resRoomType sql.NullString
			resActive   sql.NullBool
			resCreated  sql.NullTime
			resUpdated  sql.NullTime
		)
		err := rows.Scan(
			&p.ID, &p.ResidentID, &p.Amount, &p.DueDate, &paid, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
			&resID, &resName, &resMobile, &resRoomNum, &resCollege, &resJoining,
			&resRoomType, &resActive, &resCreated, &resUpdated,
		)
		if err != nil {
			return nil, err
		}
		p.PaidDate = mapNullTimePtr(paid)

		item := domain.PaymentWithResident{Payment: p}
		if resID.Valid {
			item.Resident = &domain.Resident{
				ID:          resID.String,
				Name:        resName.String,
				Mobile:      resMobile.String,
				RoomNumber:  resRoomNum.String,
				College:     resCollege.String,
				JoiningDate: resJoining.Time,
				RoomType:    resRoomType.String,
				IsActive:    resActive.Bool,
				CreatedAt:   resCreated.Time,
				UpdatedAt:   resUpdated.Time,
			}
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *paymentsRepo) ListPaymentsByResident(ctx context.Context, residentID string) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+paymentColumns+` FROM payments
		 WHERE resident_id = ? ORDER BY due_date DESC, id DESC`, residentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *paymentsRepo) CreatePayment(ctx context.Context, p domain.Payment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO payments (id, resident_id, amount, due_date, paid_date,
			status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ResidentID, p.Amount, p.DueDate, mapOptionalTime(p.PaidDate),
		p.Status, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *paymentsRepo) UpdatePaymentStatus(ctx context.Context, id string, status string, paidDate *time.Time) error {
	return requireRowAffected(r.db.ExecContext(ctx,
		`UPDATE payments SET status = ?, paid_date = ?, updated_at = ? WHERE id = ?`,
		status, mapOptionalTime(paidDate), time.Now().UTC(), id))
}
