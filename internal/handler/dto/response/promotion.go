package response

import (
	"storecredit-engine/internal/usecase/queries"
)

type PromotionListResponse struct {
	Promotions []*queries.PromotionView `json:"promotions"`
}

func NewPromotionListResponse(views []*queries.PromotionView) PromotionListResponse {
	if views == nil {
		views = []*queries.PromotionView{}
	}
	return PromotionListResponse{Promotions: views}
}
