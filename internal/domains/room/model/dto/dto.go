package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"riverstay/internal/domains/room/model"
	"riverstay/shared"
	gDto "riverstay/shared/dto"
	gModel "riverstay/shared/model"
	"riverstay/shared/timezone"
)

type CreateRoomRequest struct {
	Name        string                `json:"name"          validate:"required,min=3,max=100"`
	PricePerDay float64               `json:"price_per_day" validate:"required,min=1"`
	Description string                `json:"description"   validate:"required,min=10,max=500"`
	Image       *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
	ImageFile   multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	return model.Room{
		ID:          uuid.NewString(),
		Name:        c.Name,
		PricePerDay: c.PricePerDay,
		Description: c.Description,
		ImageURL:    imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type RoomResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PricePerDay float64 `json:"price_per_day"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.PricePerDay = model.PricePerDay
	r.Description = model.Description
	r.ImageURL = model.ImageURL
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
