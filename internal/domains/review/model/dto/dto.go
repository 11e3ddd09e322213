package dto

import (
	"github.com/google/uuid"

	"roam/internal/domains/review/model"
	"roam/shared"
	"roam/shared/constant"
	gDto "roam/shared/dto"
	gModel "roam/shared/model"
	"roam/shared/timezone"
)

type CreateReviewRequest struct {
	RoomID  string `json:"room_id" validate:"required,uuid"`
	Content string `json:"content" validate:"required,min=1,max=2000"`
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
}

// ToModel stamps the review date server-side. The author is always the
// token subject.
func (r *CreateReviewRequest) ToModel(userID, username string) model.Review {
	return model.Review{
		ID:         uuid.NewString(),
		RoomID:     r.RoomID,
		UserID:     userID,
		ReviewDate: timezone.Now(),
		Content:    r.Content,
		Rating:     r.Rating,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

// UpdateReviewRequest replaces the mutable review fields. The author
// and review date never change on update.
type UpdateReviewRequest struct {
	RoomID  string `json:"room_id" validate:"required,uuid"`
	Content string `json:"content" validate:"required,min=1,max=2000"`
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
}

func (r *UpdateReviewRequest) ToUpdateMap(username string) map[string]any {
	return map[string]any{
		model.FieldRoomID:        r.RoomID,
		model.FieldContent:       r.Content,
		model.FieldRating:        r.Rating,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}
}

type ReviewResponse struct {
	ID         string `json:"id"`
	RoomID     string `json:"room_id"`
	UserID     string `json:"user_id"`
	ReviewDate string `json:"review_date"`
	Content    string `json:"content"`
	Rating     int    `json:"rating"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.UserID = model.UserID
	r.ReviewDate = timezone.Format(model.ReviewDate, constant.DateOnly)
	r.Content = model.Content
	r.Rating = model.Rating
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
