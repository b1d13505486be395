// Package credit implements the store-credit issuing client against the
// external credit API.
package credit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"storecredit-engine/internal/infra"
	"storecredit-engine/internal/pkg/config"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
)

type IssueRequest struct {
	CustomerID     int64
	Email          string
	Amount         decimal.Decimal
	Description    string
	IdempotencyKey string
	ExpiresAt      *time.Time
}

type Issuer struct {
	httpClient *http.Client
	baseURL    string
	token      string
	maxElapsed time.Duration
	logger     *slog.Logger
}

func NewIssuer(cfg config.CreditAPIConfig, retryMaxElapsed time.Duration, logger *slog.Logger) *Issuer {
	return &Issuer{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		maxElapsed: retryMaxElapsed,
		logger:     logger,
	}
}

type issuePayload struct {
	CustomerID  int64  `json:"customer_id"`
	Email       string `json:"email,omitempty"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description,omitempty"`
	ExpiresAt   string `json:"expires_at,omitempty"`
}

// Issue posts one credit to the upstream API. The idempotency key rides in a
// header so upstream retries cannot double-credit even across processes.
// Rate limits and 5xx responses are retried with exponential backoff until
// the elapsed budget runs out; other 4xx responses fail immediately.
func (i *Issuer) Issue(ctx context.Context, req IssueRequest) error {
	payload := issuePayload{
		CustomerID:  req.CustomerID,
		Email:       req.Email,
		Amount:      req.Amount.StringFixed(2),
		Currency:    "USD",
		Description: req.Description,
	}
	if req.ExpiresAt != nil {
		payload.ExpiresAt = req.ExpiresAt.UTC().Format(time.RFC3339)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return infra.WrapRepoErr("encode credit payload", err, infra.KindUpstream)
	}

	rateLimited := false
	op := func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
			i.baseURL+"/store_credits", bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		httpReq.Header.Set("Authorization", "Bearer "+i.token)
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)

		resp, err := i.httpClient.Do(httpReq)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode < 300:
			return nil
		case resp.StatusCode == http.StatusTooManyRequests:
			rateLimited = true
			i.logger.Warn("credit api rate limited, backing off",
				"customer_id", req.CustomerID)
			return fmt.Errorf("rate limited: %s", resp.Status)
		case resp.StatusCode >= 500:
			return fmt.Errorf("upstream error: %s", resp.Status)
		default:
			respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return backoff.Permanent(fmt.Errorf("credit issue rejected: %s: %s", resp.Status, respBody))
		}
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = i.maxElapsed
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		kind := infra.KindUpstream
		if rateLimited {
			kind = infra.KindRateLimited
		}
		return infra.WrapRepoErr("credit issue failed", err, kind)
	}
	return nil
}
