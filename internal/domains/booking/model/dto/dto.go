package dto

import (
	"time"

	"github.com/google/uuid"

	"riverstay/internal/domains/booking/model"
	roomDto "riverstay/internal/domains/room/model/dto"
	"riverstay/shared"
	gDto "riverstay/shared/dto"
	gModel "riverstay/shared/model"
	"riverstay/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID string `json:"room_id" validate:"required"`
}

func (c *CreateBookingRequest) ToModel(userID, userName, roomName string) model.Booking {
	return model.Booking{
		ID:       uuid.NewString(),
		RoomID:   c.RoomID,
		RoomName: roomName,
		BookedBy: userName,
		UserID:   userID,
		BookedAt: timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type BookingResponse struct {
	ID       string `json:"id"`
	RoomID   string `json:"room_id"`
	RoomName string `json:"room_name"`
	BookedBy string `json:"booked_by"`
	BookedAt string `json:"booked_at"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.RoomName = model.RoomName
	r.BookedBy = model.BookedBy
	r.BookedAt = model.BookedAt.Format(time.RFC3339)
	r.Metadata.FromModel(model.Metadata)
}

// BookedRoomResponse pairs a booking with the room as it is listed today.
// Room is nil when the room has since been removed from the catalog.
type BookedRoomResponse struct {
	BookingResponse
	Room *roomDto.RoomResponse `json:"room,omitempty"`
}

type GetBookedRoomsResponse struct {
	Bookings  []BookedRoomResponse `json:"bookings"`
	TotalPage int                  `json:"total_page"`
	TotalData int                  `json:"total_data"`
}

func (r *GetBookedRoomsResponse) FromModels(models []model.Booking, rooms map[string]roomDto.RoomResponse, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookedRoomResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)

		if room, ok := rooms[mod.RoomID]; ok {
			r.Bookings[i].Room = &room
		}
	}
}

type BookingCreatedEvent struct {
	BookingID string    `json:"booking_id"`
	RoomID    string    `json:"room_id"`
	RoomName  string    `json:"room_name"`
	UserID    string    `json:"user_id"`
	BookedBy  string    `json:"booked_by"`
	BookedAt  time.Time `json:"booked_at"`
}
