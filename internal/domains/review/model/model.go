package model

import (
	"time"

	"riverstay/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldReviewText = "review_text"
	FieldUserID     = "user_id"
	FieldUserName   = "user_name"
	FieldPostedAt   = "posted_at"
)

// Review snapshots the author name so the feed survives account changes.
type Review struct {
	ID         string    `db:"id"`
	ReviewText string    `db:"review_text"`
	UserID     string    `db:"user_id"`
	UserName   string    `db:"user_name"`
	PostedAt   time.Time `db:"posted_at"`
	model.Metadata
}
