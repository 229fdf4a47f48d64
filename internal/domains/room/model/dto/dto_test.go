package dto_test

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"

	"riverstay/internal/domains/room/model/dto"
	"riverstay/shared/validator"
)

func makeImageHeader(contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", contentType)

	return &multipart.FileHeader{
		Filename: "room.png",
		Header:   header,
		Size:     size,
	}
}

func TestCreateRoomRequest_ImageValidation(t *testing.T) {
	tests := []struct {
		name        string
		image       *multipart.FileHeader
		expectError bool
	}{
		{
			name:        "no image is allowed",
			image:       nil,
			expectError: false,
		},
		{
			name:        "image at the two megabyte limit",
			image:       makeImageHeader("image/png", 2*1024*1024),
			expectError: false,
		},
		{
			name:        "image over the two megabyte limit",
			image:       makeImageHeader("image/jpeg", 2*1024*1024+1),
			expectError: true,
		},
		{
			name:        "disallowed mimetype",
			image:       makeImageHeader("application/pdf", 1024),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateRoomRequest{
				Name:        "Deluxe Suite",
				PricePerDay: 150,
				Description: "A spacious room with a river view.",
				Image:       tt.image,
			}

			err := validator.ValidateStruct(&req)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateRoomRequest_ToModel(t *testing.T) {
	req := dto.CreateRoomRequest{
		Name:        "Deluxe Suite",
		PricePerDay: 150,
		Description: "A spacious room with a river view.",
	}

	room := req.ToModel("admin@example.com", "https://bucket.s3.amazonaws.com/rooms/abc.png")

	assert.NotEmpty(t, room.ID)
	assert.Equal(t, req.Name, room.Name)
	assert.Equal(t, req.PricePerDay, room.PricePerDay)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/rooms/abc.png", room.ImageURL)
	assert.Equal(t, "admin@example.com", room.CreatedBy)
	assert.Equal(t, "admin@example.com", room.ModifiedBy)
}
