package model

import (
	"time"

	"riverstay/shared/model"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID       = "id"
	FieldRoomID   = "room_id"
	FieldRoomName = "room_name"
	FieldBookedBy = "booked_by"
	FieldUserID   = "user_id"
	FieldBookedAt = "booked_at"
)

// Booking keeps a snapshot of the room name and guest name at booking
// time so the record stays meaningful if the room changes later.
type Booking struct {
	ID       string    `db:"id"`
	RoomID   string    `db:"room_id"`
	RoomName string    `db:"room_name"`
	BookedBy string    `db:"booked_by"`
	UserID   string    `db:"user_id"`
	BookedAt time.Time `db:"booked_at"`
	model.Metadata
}
