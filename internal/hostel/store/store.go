package store

import (
	"context"
	"errors"
	"time"

	"github.com/sharmapg/hostel/internal/hostel/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres if the business ever outgrows one box) implement this. It exposes
// sub-repositories per entity to keep concerns tidy and testable.
type Store interface {
	Users() Users
	Residents() Residents
	Inquiries() Inquiries
	Payments() Payments
	RoomStatus() RoomStatus

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns an admin account by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new admin account (id is provided by the app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash rotates the stored hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// IsEmpty reports whether any admin account exists yet.
	IsEmpty(ctx context.Context) (bool, error)
}

type Residents interface {
	// GetResidentByID returns a resident regardless of active flag, so the
	// admin can still inspect moved-out residents by id.
	GetResidentByID(ctx context.Context, id string) (domain.Resident, error)

	// ListActiveResidents returns is_active residents, newest first.
	ListActiveResidents(ctx context.Context) ([]domain.Resident, error)

	// CreateResident inserts a new resident with is_active=true.
	CreateResident(ctx context.Context, r domain.Resident) error

	// UpdateResident applies the non-nil fields of upd and bumps updated_at.
	UpdateResident(ctx context.Context, id string, upd domain.ResidentUpdate) error

	// SoftDeleteResident flips is_active to false. The row stays.
	SoftDeleteResident(ctx context.Context, id string) error
}

type Inquiries interface {
	GetInquiryByID(ctx context.Context, id string) (domain.Inquiry, error)

	// ListInquiries returns every inquiry ever received, newest first.
	ListInquiries(ctx context.Context) ([]domain.Inquiry, error)

	// CreateInquiry inserts a contact-form submission with is_handled=false.
	CreateInquiry(ctx context.Context, q domain.Inquiry) error

	// MarkInquiryHandled sets is_handled=true. Re-marking an already
	// handled inquiry succeeds and leaves the flag true.
	MarkInquiryHandled(ctx context.Context, id string) error
}

type Payments interface {
	GetPaymentByID(ctx context.Context, id string) (domain.Payment, error)

	// ListPaymentsWithResidents returns all payments newest first, each
	// left-joined with its owning resident. A nil resident means the
	// foreign key failed to resolve.
	ListPaymentsWithResidents(ctx context.Context) ([]domain.PaymentWithResident, error)

	// ListPaymentsByResident returns one resident's payments, newest first.
	ListPaymentsByResident(ctx context.Context, residentID string) ([]domain.Payment, error)

	// CreatePayment inserts a payment row.
	CreatePayment(ctx context.Context, p domain.Payment) error

	// UpdatePaymentStatus sets the status and paid_date and bumps updated_at.
	UpdatePaymentStatus(ctx context.Context, id, status string, paidDate *time.Time) error
}

type RoomStatus interface {
	// ListRoomStatus returns occupancy for every room type.
	ListRoomStatus(ctx context.Context) ([]domain.RoomStatus, error)

	// GetRoomStatusByType returns the row for one room type.
	GetRoomStatusByType(ctx context.Context, roomType string) (domain.RoomStatus, error)

	// UpsertRoomStatus inserts a row for rs.RoomType or updates the counts
	// on the existing one. The id of a pre-existing row is preserved.
	UpsertRoomStatus(ctx context.Context, rs domain.RoomStatus) error
}
