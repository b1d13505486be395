package repository

import (
	"context"

	"storecredit-engine/internal/infra"
	"storecredit-engine/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IssuanceRepository is the local replay guard for bulk credit issuance. One
// row per idempotency key: a key that is already issued means some earlier run
// of the same request credited this customer, and the executor must not do it
// again. Pending rows from a crashed run are released back for retry.
type IssuanceRepository struct {
	db db.DBTX
}

func NewIssuanceRepository(dbtx db.DBTX) *IssuanceRepository {
	return &IssuanceRepository{db: dbtx}
}

// TryBegin claims the key for this run. It returns alreadyIssued=true when a
// previous run confirmed the credit, in which case the caller records the
// customer as already credited rather than issuing twice.
func (r *IssuanceRepository) TryBegin(ctx context.Context, key string, jobID uuid.UUID, customerID int64, amount decimal.Decimal) (alreadyIssued bool, err error) {
	query := `
	INSERT INTO bulk_credit_issuances (idempotency_key, job_id, customer_id, amount, status)
	VALUES ($1, $2, $3, $4, 'pending')
	ON CONFLICT (idempotency_key) DO NOTHING`

	tag, err := r.db.Exec(ctx, query, key, jobID, customerID, amount)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim issuance key", err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	// Key exists. Re-claim it if the previous attempt never confirmed.
	var status string
	row := r.db.QueryRow(ctx, `SELECT status FROM bulk_credit_issuances WHERE idempotency_key = $1`, key)
	if err := row.Scan(&status); err != nil {
		return false, infra.WrapRepoErr("failed to inspect issuance key", err)
	}
	if status == "issued" {
		return true, nil
	}

	_, err = r.db.Exec(ctx, `
	UPDATE bulk_credit_issuances SET job_id = $2, amount = $3
	WHERE idempotency_key = $1 AND status = 'pending'`, key, jobID, amount)
	if err != nil {
		return false, infra.WrapRepoErr("failed to re-claim pending issuance", err)
	}
	return false, nil
}

// MarkIssued confirms the credit landed.
func (r *IssuanceRepository) MarkIssued(ctx context.Context, key string) error {
	_, err := r.db.Exec(ctx, `
	UPDATE bulk_credit_issuances SET status = 'issued', issued_at = now()
	WHERE idempotency_key = $1`, key)
	if err != nil {
		return infra.WrapRepoErr("failed to mark issuance as issued", err)
	}
	return nil
}

// Release frees a claimed key after a definitive failure so a manual re-run
// can attempt the customer again.
func (r *IssuanceRepository) Release(ctx context.Context, key string) error {
	_, err := r.db.Exec(ctx, `
	DELETE FROM bulk_credit_issuances WHERE idempotency_key = $1 AND status = 'pending'`, key)
	if err != nil {
		return infra.WrapRepoErr("failed to release issuance key", err)
	}
	return nil
}
