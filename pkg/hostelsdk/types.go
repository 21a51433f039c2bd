package hostelsdk

import "time"

// ============================================================================
// Auth
// ============================================================================

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed session token and the authenticated user.
// The token is valid for 24 hours; there is no refresh flow, clients log in
// again when it expires.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// User is the public view of an admin user. The password hash never leaves
// the server.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// BootstrapRequest provisions the first admin user and the initial room
// inventory. It is guarded by a pre-shared bootstrap token and only works
// while no users exist.
type BootstrapRequest struct {
	// Token must match the server's configured bootstrap token.
	Token string `json:"token"`

	// Username for the initial admin user (3-32 chars, alphanumeric with _ or -).
	Username string `json:"username"`

	// Password for the admin user (8-128 chars).
	Password string `json:"password"`

	// Rooms seeds the room-status table. May be empty.
	Rooms []RoomSeed `json:"rooms,omitempty"`
}

// RoomSeed is one initial room-status row.
type RoomSeed struct {
	RoomType      string `json:"roomType"`
	TotalRooms    int    `json:"totalRooms"`
	OccupiedRooms int    `json:"occupiedRooms"`
}

// BootstrapResponse contains the ID of the created admin user.
type BootstrapResponse struct {
	AdminUserID string `json:"adminUserId"`
}

// ============================================================================
// Residents
// ============================================================================

// Resident is a person currently or formerly staying at the hostel.
type Resident struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Mobile      string    `json:"mobile"`
	RoomNumber  string    `json:"roomNumber"`
	College     string    `json:"college"`
	JoiningDate time.Time `json:"joiningDate"`
	RoomType    string    `json:"roomType"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateResidentRequest is the body of POST /api/residents.
type CreateResidentRequest struct {
	Name        string    `json:"name"`
	Mobile      string    `json:"mobile"`
	RoomNumber  string    `json:"roomNumber"`
	College     string    `json:"college"`
	JoiningDate time.Time `json:"joiningDate"`
	RoomType    string    `json:"roomType"`
}

// UpdateResidentRequest is the body of PUT /api/residents/{id}. All fields
// are optional; omitted fields keep their current values.
type UpdateResidentRequest struct {
	Name        *string    `json:"name,omitempty"`
	Mobile      *string    `json:"mobile,omitempty"`
	RoomNumber  *string    `json:"roomNumber,omitempty"`
	College     *string    `json:"college,omitempty"`
	JoiningDate *time.Time `json:"joiningDate,omitempty"`
	RoomType    *string    `json:"roomType,omitempty"`
}

// ============================================================================
// Inquiries
// ============================================================================

// Inquiry is a contact-form submission from a prospective resident.
type Inquiry struct {
	ID           string    `json:"id"`
	StudentName  string    `json:"studentName"`
	College      string    `json:"college"`
	RoomType     string    `json:"roomType"`
	StayDuration string    `json:"stayDuration,omitempty"`
	Phone        string    `json:"phone"`
	IsHandled    bool      `json:"isHandled"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateInquiryRequest is the body of the public POST /api/inquiries.
type CreateInquiryRequest struct {
	StudentName  string `json:"studentName"`
	College      string `json:"college"`
	RoomType     string `json:"roomType"`
	StayDuration string `json:"stayDuration,omitempty"`
	Phone        string `json:"phone"`
}

// ============================================================================
// Payments
// ============================================================================

// Payment is a monthly rent entry. Amount is in rupees.
type Payment struct {
	ID         string     `json:"id"`
	ResidentID string     `json:"residentId"`
	Amount     float64    `json:"amount"`
	DueDate    time.Time  `json:"dueDate"`
	PaidDate   *time.Time `json:"paidDate"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// PaymentWithResident decorates a payment with its owning resident for the
// payment tracker listing. Resident is null when the referenced resident row
// is missing from the database.
type PaymentWithResident struct {
	Payment
	Resident *Resident `json:"resident"`
}

// CreatePaymentRequest is the body of POST /api/payments.
type CreatePaymentRequest struct {
	ResidentID string    `json:"residentId"`
	Amount     float64   `json:"amount"`
	DueDate    time.Time `json:"dueDate"`

	// Status defaults to "pending" when omitted.
	Status string `json:"status,omitempty"`
}

// UpdatePaymentStatusRequest is the body of PUT /api/payments/{id}/status.
// When Status is "paid" and PaidDate is omitted, the server stamps the
// current time.
type UpdatePaymentStatusRequest struct {
	Status   string     `json:"status"`
	PaidDate *time.Time `json:"paidDate,omitempty"`
}

// ============================================================================
// Room status
// ============================================================================

// RoomStatus is the occupancy summary for one room type.
type RoomStatus struct {
	ID            string    `json:"id"`
	RoomType      string    `json:"roomType"`
	TotalRooms    int       `json:"totalRooms"`
	OccupiedRooms int       `json:"occupiedRooms"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UpsertRoomStatusRequest is the body of PUT /api/room-status. The row is
// keyed by RoomType; an existing row is updated in place.
type UpsertRoomStatusRequest struct {
	RoomType      string `json:"roomType"`
	TotalRooms    int    `json:"totalRooms"`
	OccupiedRooms int    `json:"occupiedRooms"`
}

// ============================================================================
// System
// ============================================================================

// HealthResponse is returned by GET /livez and GET /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version,omitempty"`
	Uptime  string        `json:"uptime,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each critical dependency.
type HealthChecks struct {
	Database string `json:"database"`
}
