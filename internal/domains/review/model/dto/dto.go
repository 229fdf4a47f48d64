package dto

import (
	"time"

	"github.com/google/uuid"

	"riverstay/internal/domains/review/model"
	"riverstay/shared"
	gDto "riverstay/shared/dto"
	gModel "riverstay/shared/model"
	"riverstay/shared/timezone"
)

type PostReviewRequest struct {
	ReviewText string `json:"review_text" validate:"required,min=1,max=1000"`
}

func (p *PostReviewRequest) ToModel(userID, userName string) model.Review {
	return model.Review{
		ID:         uuid.NewString(),
		ReviewText: p.ReviewText,
		UserID:     userID,
		UserName:   userName,
		PostedAt:   timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type ReviewResponse struct {
	ID         string `json:"id"`
	ReviewText string `json:"review_text"`
	UserName   string `json:"user_name"`
	PostedAt   string `json:"posted_at"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.ReviewText = model.ReviewText
	r.UserName = model.UserName
	r.PostedAt = model.PostedAt.Format(time.RFC3339)
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
