package hostelsdk

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	reasonRequired = "required"
	reasonNegative = "must not be negative"
)

var (
	reUsername = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	// Digits with an optional leading +, the occasional space or dash. Loose
	// on purpose; the admin re-dials these numbers by hand anyway.
	rePhone = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,14}$`)
)

// Validate checks the login request structurally. Credential checking is the
// service's job; this only rejects requests that could never succeed.
func (r LoginRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = reasonRequired
	}
	if r.Password == "" {
		errs["password"] = reasonRequired
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the bootstrap request fields. Returns a map of field names
// to error messages, or nil if all fields are valid.
func (r BootstrapRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if r.Token == "" {
		errs["token"] = reasonRequired
	}

	username := strings.TrimSpace(r.Username)
	switch {
	case username == "":
		errs["username"] = reasonRequired
	case len(username) < 3 || len(username) > 32:
		errs["username"] = "must be 3-32 characters"
	case !reUsername.MatchString(username):
		errs["username"] = "must only contain a-z, A-Z, 0-9, _ or -"
	}

	switch {
	case r.Password == "":
		errs["password"] = reasonRequired
	case len(r.Password) < 8:
		errs["password"] = "too short (min 8)"
	case len(r.Password) > 128:
		errs["password"] = "too long (max 128)"
	}

	seen := make(map[string]struct{}, len(r.Rooms))
	for i, room := range r.Rooms {
		key := fmt.Sprintf("rooms[%d]", i)
		roomType := strings.TrimSpace(room.RoomType)
		switch {
		case roomType == "":
			errs[key+".roomType"] = reasonRequired
		default:
			if _, dup := seen[roomType]; dup {
				errs[key+".roomType"] = "duplicate room type"
			}
			seen[roomType] = struct{}{}
		}
		if room.TotalRooms < 0 {
			errs[key+".totalRooms"] = reasonNegative
		}
		if room.OccupiedRooms < 0 {
			errs[key+".occupiedRooms"] = reasonNegative
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks a public inquiry submission.
func (r CreateInquiryRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.StudentName) == "" {
		errs["studentName"] = reasonRequired
	}
	if strings.TrimSpace(r.College) == "" {
		errs["college"] = reasonRequired
	}
	if strings.TrimSpace(r.RoomType) == "" {
		errs["roomType"] = reasonRequired
	}
	switch {
	case strings.TrimSpace(r.Phone) == "":
		errs["phone"] = reasonRequired
	case !rePhone.MatchString(strings.TrimSpace(r.Phone)):
		errs["phone"] = "must be a phone number"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks a resident creation request.
func (r CreateResidentRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = reasonRequired
	}
	switch {
	case strings.TrimSpace(r.Mobile) == "":
		errs["mobile"] = reasonRequired
	case !rePhone.MatchString(strings.TrimSpace(r.Mobile)):
		errs["mobile"] = "must be a phone number"
	}
	if strings.TrimSpace(r.RoomNumber) == "" {
		errs["roomNumber"] = reasonRequired
	}
	if strings.TrimSpace(r.College) == "" {
		errs["college"] = reasonRequired
	}
	if r.JoiningDate.IsZero() {
		errs["joiningDate"] = reasonRequired
	}
	if strings.TrimSpace(r.RoomType) == "" {
		errs["roomType"] = reasonRequired
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks a partial resident update. Present fields must not be
// blanked out.
func (r UpdateResidentRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errs["name"] = "must not be empty"
	}
	if r.Mobile != nil {
		switch {
		case strings.TrimSpace(*r.Mobile) == "":
			errs["mobile"] = "must not be empty"
		case !rePhone.MatchString(strings.TrimSpace(*r.Mobile)):
			errs["mobile"] = "must be a phone number"
		}
	}
	if r.RoomNumber != nil && strings.TrimSpace(*r.RoomNumber) == "" {
		errs["roomNumber"] = "must not be empty"
	}
	if r.College != nil && strings.TrimSpace(*r.College) == "" {
		errs["college"] = "must not be empty"
	}
	if r.JoiningDate != nil && r.JoiningDate.IsZero() {
		errs["joiningDate"] = "must be a date"
	}
	if r.RoomType != nil && strings.TrimSpace(*r.RoomType) == "" {
		errs["roomType"] = "must not be empty"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks a payment creation request. Resident existence is checked
// by the service, not here.
func (r CreatePaymentRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.ResidentID) == "" {
		errs["residentId"] = reasonRequired
	}
	if r.Amount <= 0 {
		errs["amount"] = "must be positive"
	}
	if r.DueDate.IsZero() {
		errs["dueDate"] = reasonRequired
	}
	if r.Status != "" && !validStatus(r.Status) {
		errs["status"] = "must be one of pending, paid, overdue"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks a payment status update.
func (r UpdatePaymentStatusRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if !validStatus(r.Status) {
		errs["status"] = "must be one of pending, paid, overdue"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks a room-status upsert. Occupancy exceeding capacity is
// allowed; the counts are free-form inventory numbers.
func (r UpsertRoomStatusRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.RoomType) == "" {
		errs["roomType"] = reasonRequired
	}
	if r.TotalRooms < 0 {
		errs["totalRooms"] = reasonNegative
	}
	if r.OccupiedRooms < 0 {
		errs["occupiedRooms"] = reasonNegative
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validStatus(s string) bool {
	switch s {
	case "pending", "paid", "overdue":
		return true
	}
	return false
}
