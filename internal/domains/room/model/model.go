package model

import "riverstay/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldPricePerDay = "price_per_day"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
)

type Room struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	PricePerDay float64 `db:"price_per_day"`
	Description string  `db:"description"`
	ImageURL    string  `db:"image_url"`
	model.Metadata
}
