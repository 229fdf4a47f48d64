package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"riverstay/internal/domains/booking/model"
	"riverstay/internal/domains/booking/model/dto"
	roomDto "riverstay/internal/domains/room/model/dto"
	"riverstay/shared/timezone"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{RoomID: "room-id-123"}

	booking := req.ToModel("user-id-123", "Test User", "Deluxe Suite")

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "room-id-123", booking.RoomID)
	assert.Equal(t, "Deluxe Suite", booking.RoomName)
	assert.Equal(t, "Test User", booking.BookedBy)
	assert.Equal(t, "user-id-123", booking.UserID)
	assert.False(t, booking.BookedAt.IsZero())
}

func TestGetBookedRoomsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{
			ID:       "booking-id-1",
			RoomID:   "room-id-123",
			RoomName: "Deluxe Suite",
			BookedBy: "Test User",
			UserID:   "user-id-123",
			BookedAt: timezone.Now(),
		},
		{
			ID:       "booking-id-2",
			RoomID:   "room-id-removed",
			RoomName: "Old Room",
			BookedBy: "Test User",
			UserID:   "user-id-123",
			BookedAt: timezone.Now(),
		},
	}

	rooms := map[string]roomDto.RoomResponse{
		"room-id-123": {
			ID:          "room-id-123",
			Name:        "Deluxe Suite",
			PricePerDay: 150,
		},
	}

	var res dto.GetBookedRoomsResponse
	res.FromModels(bookings, rooms, 2, 10)

	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)

	// The first booking still has a live catalog entry.
	assert.NotNil(t, res.Bookings[0].Room)
	assert.Equal(t, "Deluxe Suite", res.Bookings[0].Room.Name)

	// The second booking's room was removed, so only the snapshot remains.
	assert.Nil(t, res.Bookings[1].Room)
	assert.Equal(t, "Old Room", res.Bookings[1].RoomName)
}
