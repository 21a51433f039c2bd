package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sharmapg/hostel/internal/hostel/domain"
	"github.com/sharmapg/hostel/internal/hostel/service"
	"github.com/sharmapg/hostel/internal/hostel/store"
	"github.com/sharmapg/hostel/pkg/hostelsdk"
)

// decodeBody decodes the request body into target and writes a 400 on
// failure. Returns false when the handler should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		hostelsdk.ErrInvalidRequest.WriteError(w)
		return false
	}
	return true
}

// writeServiceError maps service and store sentinel errors onto the wire
// error set. Anything unrecognised is a 500 with no internals leaked.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		hostelsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrUnknownResident):
		hostelsdk.ErrNotFound.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		hostelsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrInvalidStatus):
		hostelsdk.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrBootstrapAlready):
		hostelsdk.ErrAlreadyProvisioned.WriteError(w)
	case errors.Is(err, service.ErrBootstrapUnauthorized):
		hostelsdk.ErrForbidden.WriteError(w)
	default:
		hostelsdk.ErrServerError.WriteError(w)
	}
}

func toSDKUser(u domain.User) hostelsdk.User {
	return hostelsdk.User{ID: u.ID, Username: u.Username}
}

func toSDKResident(r domain.Resident) hostelsdk.Resident {
	return hostelsdk.Resident{
		ID:          r.ID,
		Name:        r.Name,
		Mobile:      r.Mobile,
		RoomNumber:  r.RoomNumber,
		College:     r.College,
		JoiningDate: r.JoiningDate,
		RoomType:    r.RoomType,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toSDKResidents(in []domain.Resident) []hostelsdk.Resident {
	out := make([]hostelsdk.Resident, len(in))
	for i, r := range in {
		out[i] = toSDKResident(r)
	}
	return out
}

func toSDKInquiry(i domain.Inquiry) hostelsdk.Inquiry {
	return hostelsdk.Inquiry{
		ID:           i.ID,
		StudentName:  i.StudentName,
		College:      i.College,
		RoomType:     i.RoomType,
		StayDuration: i.StayDuration,
		Phone:        i.Phone,
		IsHandled:    i.IsHandled,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func toSDKInquiries(in []domain.Inquiry) []hostelsdk.Inquiry {
	out := make([]hostelsdk.Inquiry, len(in))
	for i, inq := range in {
		out[i] = toSDKInquiry(inq)
	}
	return out
}

func toSDKPayment(p domain.Payment) hostelsdk.Payment {
	return hostelsdk.Payment{
		ID:         p.ID,
		ResidentID: p.ResidentID,
		Amount:     p.Amount,
		DueDate:    p.DueDate,
		PaidDate:   p.PaidDate,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toSDKPayments(in []domain.Payment) []hostelsdk.Payment {
	out := make([]hostelsdk.Payment, len(in))
	for i, p := range in {
		out[i] = toSDKPayment(p)
	}
	return out
}

func toSDKPaymentsWithResidents(in []domain.PaymentWithResident) []hostelsdk.PaymentWithResident {
	out := make([]hostelsdk.PaymentWithResident, len(in))
	for i, item := range in {
		out[i] = hostelsdk.PaymentWithResident{Payment: toSDKPayment(item.Payment)}
		if item.Resident != nil {
			res := toSDKResident(*item.Resident)
			out[i].Resident = &res
		}
	}
	return out
}

func toSDKRoomStatus(rs domain.RoomStatus) hostelsdk.RoomStatus {
	return hostelsdk.RoomStatus{
		ID:            rs.ID,
		RoomType:      rs.RoomType,
		TotalRooms:    rs.TotalRooms,
		OccupiedRooms: rs.OccupiedRooms,
		UpdatedAt:     rs.UpdatedAt,
	}
}

func toSDKRoomStatuses(in []domain.RoomStatus) []hostelsdk.RoomStatus {
	out := make([]hostelsdk.RoomStatus, len(in))
	for i, rs := range in {
		out[i] = toSDKRoomStatus(rs)
	}
	return out
}
