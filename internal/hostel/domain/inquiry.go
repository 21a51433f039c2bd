package domain

import "time"

// Inquiry is a public contact-form submission from a prospective resident.
// Inquiries are never deleted; the admin flips IsHandled once followed up.
type Inquiry struct {
	ID           string
	StudentName  string
	College      string
	RoomType     string
	StayDuration string // optional, free text ("6 months", "1 year")
	Phone        string
	IsHandled    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
