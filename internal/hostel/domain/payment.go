package domain

import "time"

// Payment statuses. The only transition the admin panel performs is
// pending/overdue -> paid, which stamps PaidDate.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusOverdue = "overdue"
)

// ValidPaymentStatus reports whether s is one of the known statuses.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusOverdue:
		return true
	}
	return false
}

// Payment is a monthly rent entry for a resident. Amount is in rupees.
type Payment struct {
	ID         string
	ResidentID string
	Amount     float64
	DueDate    time.Time
	PaidDate   *time.Time
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PaymentWithResident decorates a payment with its owning resident for the
// payment tracker listing. Resident is nil when the referenced resident row
// is missing, which is a data-integrity anomaly, not a valid state.
type PaymentWithResident struct {
	Payment
	Resident *Resident
}
