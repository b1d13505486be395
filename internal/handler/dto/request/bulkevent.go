package request

import (
	"time"

	"storecredit-engine/internal/domain/bulkevent"

	"github.com/shopspring/decimal"
)

type BulkEventRequest struct {
	StartDatetime     time.Time  `json:"start_datetime" binding:"required"`
	EndDatetime       time.Time  `json:"end_datetime" binding:"required"`
	Sources           []string   `json:"sources" binding:"required"`
	CreditPercent     string     `json:"credit_percent" binding:"required"`
	IncludeAuthorized bool       `json:"include_authorized"`
	CollectionIDs     []int64    `json:"collection_ids,omitempty"`
	ProductTags       []string   `json:"product_tags,omitempty"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
}

func (r BulkEventRequest) ToDomain() (bulkevent.Request, error) {
	percent, err := decimal.NewFromString(r.CreditPercent)
	if err != nil {
		return bulkevent.Request{}, err
	}
	req := bulkevent.Request{
		StartDatetime:     r.StartDatetime,
		EndDatetime:       r.EndDatetime,
		Sources:           r.Sources,
		CreditPercent:     percent,
		IncludeAuthorized: r.IncludeAuthorized,
		CollectionIDs:     r.CollectionIDs,
		ProductTags:       r.ProductTags,
		ExpiresAt:         r.ExpiresAt,
	}
	if err := req.Validate(); err != nil {
		return bulkevent.Request{}, err
	}
	return req, nil
}

type SourcesRequest struct {
	StartDatetime time.Time `form:"start_datetime" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDatetime   time.Time `form:"end_datetime" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}
