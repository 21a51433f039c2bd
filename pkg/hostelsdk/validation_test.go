package hostelsdk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBootstrapRequestValidate(t *testing.T) {
	t.Parallel()

	valid := BootstrapRequest{
		Token:    "setup-token",
		Username: "admin",
		Password: "correct horse battery",
		Rooms: []RoomSeed{
			{RoomType: "single", TotalRooms: 10, OccupiedRooms: 4},
			{RoomType: "double", TotalRooms: 6, OccupiedRooms: 6},
		},
	}
	require.Nil(t, valid.Validate())

	t.Run("username rules", func(t *testing.T) {
		r := valid
		r.Username = "ab"
		require.Contains(t, r.Validate(), "username")

		r.Username = "has space"
		require.Contains(t, r.Validate(), "username")

		r.Username = "ok_name-01"
		require.Nil(t, r.Validate())
	})

	t.Run("password bounds", func(t *testing.T) {
		r := valid
		r.Password = "short"
		require.Contains(t, r.Validate(), "password")
	})

	t.Run("duplicate room type", func(t *testing.T) {
		r := valid
		r.Rooms = []RoomSeed{
			{RoomType: "single", TotalRooms: 10},
			{RoomType: "single", TotalRooms: 2},
		}
		errs := r.Validate()
		require.Contains(t, errs, "rooms[1].roomType")
		require.Equal(t, "duplicate room type", errs["rooms[1].roomType"])
	})

	t.Run("negative counts", func(t *testing.T) {
		r := valid
		r.Rooms = []RoomSeed{{RoomType: "single", TotalRooms: -1, OccupiedRooms: -2}}
		errs := r.Validate()
		require.Contains(t, errs, "rooms[0].totalRooms")
		require.Contains(t, errs, "rooms[0].occupiedRooms")
	})
}

func TestCreateInquiryRequestValidate(t *testing.T) {
	t.Parallel()

	valid := CreateInquiryRequest{
		StudentName: "Asha Verma",
		College:     "City Engineering College",
		RoomType:    "double",
		Phone:       "+91 98765 43210",
	}
	require.Nil(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CreateInquiryRequest)
		field  string
	}{
		{"missing name", func(r *CreateInquiryRequest) { r.StudentName = "  " }, "studentName"},
		{"missing college", func(r *CreateInquiryRequest) { r.College = "" }, "college"},
		{"missing room type", func(r *CreateInquiryRequest) { r.RoomType = "" }, "roomType"},
		{"missing phone", func(r *CreateInquiryRequest) { r.Phone = "" }, "phone"},
		{"letters in phone", func(r *CreateInquiryRequest) { r.Phone = "call me" }, "phone"},
		{"phone too short", func(r *CreateInquiryRequest) { r.Phone = "12345" }, "phone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			require.Contains(t, r.Validate(), tt.field)
		})
	}
}

func TestUpdateResidentRequestValidate(t *testing.T) {
	t.Parallel()

	// Absent fields are fine; present fields must carry a usable value.
	require.Nil(t, UpdateResidentRequest{}.Validate())

	blank := ""
	require.Contains(t, UpdateResidentRequest{Name: &blank}.Validate(), "name")

	badMobile := "not-a-number"
	require.Contains(t, UpdateResidentRequest{Mobile: &badMobile}.Validate(), "mobile")

	zero := time.Time{}
	require.Contains(t, UpdateResidentRequest{JoiningDate: &zero}.Validate(), "joiningDate")
}

func TestPaymentRequestValidate(t *testing.T) {
	t.Parallel()

	valid := CreatePaymentRequest{
		ResidentID: "01J9ZK2M3N4P5Q6R7S8T9V0W1X",
		Amount:     8500,
		DueDate:    time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC),
	}
	require.Nil(t, valid.Validate())

	t.Run("zero amount", func(t *testing.T) {
		r := valid
		r.Amount = 0
		require.Contains(t, r.Validate(), "amount")
	})

	t.Run("unknown status", func(t *testing.T) {
		r := valid
		r.Status = "settled"
		require.Contains(t, r.Validate(), "status")
	})

	t.Run("empty status defaults later", func(t *testing.T) {
		r := valid
		r.Status = ""
		require.Nil(t, r.Validate())
	})

	t.Run("status update", func(t *testing.T) {
		require.Nil(t, UpdatePaymentStatusRequest{Status: "paid"}.Validate())
		require.Contains(t, UpdatePaymentStatusRequest{Status: ""}.Validate(), "status")
		require.Contains(t, UpdatePaymentStatusRequest{Status: "late"}.Validate(), "status")
	})
}

func TestUpsertRoomStatusRequestValidate(t *testing.T) {
	t.Parallel()

	require.Nil(t, UpsertRoomStatusRequest{RoomType: "triple", TotalRooms: 4, OccupiedRooms: 4}.Validate())

	// Over-occupancy is deliberately not rejected.
	require.Nil(t, UpsertRoomStatusRequest{RoomType: "triple", TotalRooms: 4, OccupiedRooms: 5}.Validate())

	errs := UpsertRoomStatusRequest{RoomType: " ", TotalRooms: -1}.Validate()
	require.Contains(t, errs, "roomType")
	require.Contains(t, errs, "totalRooms")
}
