package response

import (
	"storecredit-engine/internal/usecase/queries"

	"github.com/google/uuid"
)

type RunResponse struct {
	JobID             uuid.UUID              `json:"job_id"`
	Status            string                 `json:"status"`
	SuccessCount      int                    `json:"success_count"`
	FailureCount      int                    `json:"failure_count"`
	TotalCreditIssued string                 `json:"total_credit_issued"`
	Errors            []queries.JobErrorView `json:"errors"`
}

func FromJobView(v *queries.JobView) RunResponse {
	errs := v.Errors
	if errs == nil {
		errs = []queries.JobErrorView{}
	}
	return RunResponse{
		JobID:             v.ID,
		Status:            v.Status,
		SuccessCount:      v.SuccessCount,
		FailureCount:      v.FailureCount,
		TotalCreditIssued: v.TotalCreditIssued,
		Errors:            errs,
	}
}
