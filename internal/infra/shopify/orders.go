// Package shopify implements the order source against the Shopify Admin REST
// API for the single tenant shop this instance serves.
package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"storecredit-engine/internal/domain/bulkevent"
	"storecredit-engine/internal/domain/order"
	"storecredit-engine/internal/infra"
	"storecredit-engine/internal/pkg/config"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
)

const pageLimit = 250

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	maxElapsed time.Duration
	logger     *slog.Logger
}

func NewClient(cfg config.ShopifyConfig, retryMaxElapsed time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    fmt.Sprintf("https://%s/admin/api/%s", cfg.ShopDomain, cfg.APIVersion),
		token:      cfg.AccessToken,
		maxElapsed: retryMaxElapsed,
		logger:     logger,
	}
}

type restOrder struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	SourceName      string `json:"source_name"`
	SubtotalPrice   string `json:"subtotal_price"`
	FinancialStatus string `json:"financial_status"`
	CreatedAt       string `json:"created_at"`
	Customer        struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
		Tags  string `json:"tags"`
	} `json:"customer"`
	NoteAttributes []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	} `json:"note_attributes"`
	LineItems []struct {
		ProductID int64  `json:"product_id"`
		Title     string `json:"title"`
		Quantity  int    `json:"quantity"`
		Price     string `json:"price"`
	} `json:"line_items"`
}

type restProduct struct {
	ID   int64  `json:"id"`
	Tags string `json:"tags"`
}

type restCollect struct {
	ProductID    int64 `json:"product_id"`
	CollectionID int64 `json:"collection_id"`
}

// ListOrders fetches the window once and keeps the orders whose channel is
// in sources. The Admin API filters by creation time only, so the source
// filter runs here; kept orders are enriched with product tags and collection
// membership so domain filters can run.
func (c *Client) ListOrders(ctx context.Context, sources []string, start, end time.Time) ([]order.Order, error) {
	raw, err := c.fetchOrders(ctx, start, end)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		wanted[s] = struct{}{}
	}
	// An empty source_name surfaces as "unknown", same as in ListSources.
	keep := func(sourceName string) bool {
		if sourceName == "" {
			sourceName = "unknown"
		}
		_, ok := wanted[sourceName]
		return ok
	}

	productIDs := make(map[int64]struct{})
	for _, ro := range raw {
		if !keep(ro.SourceName) {
			continue
		}
		for _, li := range ro.LineItems {
			if li.ProductID != 0 {
				productIDs[li.ProductID] = struct{}{}
			}
		}
	}

	tagsByProduct, err := c.fetchProductTags(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	collectionsByProduct, err := c.fetchCollectionMembership(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	var out []order.Order
	for _, ro := range raw {
		if !keep(ro.SourceName) {
			continue
		}
		o, err := toDomainOrder(ro, tagsByProduct, collectionsByProduct)
		if err != nil {
			c.logger.Warn("skipping unparsable order", "order_id", ro.ID, "error", err)
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// ListSources counts orders in the range grouped by channel.
func (c *Client) ListSources(ctx context.Context, start, end time.Time) ([]bulkevent.SourceCount, int, error) {
	raw, err := c.fetchOrders(ctx, start, end)
	if err != nil {
		return nil, 0, err
	}

	counts := make(map[string]int)
	for _, ro := range raw {
		name := ro.SourceName
		if name == "" {
			name = "unknown"
		}
		counts[name]++
	}

	out := make([]bulkevent.SourceCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, bulkevent.SourceCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, len(raw), nil
}

func (c *Client) fetchOrders(ctx context.Context, start, end time.Time) ([]restOrder, error) {
	params := url.Values{}
	params.Set("status", "any")
	params.Set("limit", strconv.Itoa(pageLimit))
	params.Set("created_at_min", start.UTC().Format(time.RFC3339))
	params.Set("created_at_max", end.UTC().Format(time.RFC3339))

	next := c.baseURL + "/orders.json?" + params.Encode()
	var all []restOrder
	for next != "" {
		var page struct {
			Orders []restOrder `json:"orders"`
		}
		link, err := c.getJSON(ctx, next, &page)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Orders...)
		next = link
	}
	return all, nil
}

func (c *Client) fetchProductTags(ctx context.Context, ids map[int64]struct{}) (map[int64][]string, error) {
	out := make(map[int64][]string, len(ids))
	batch := make([]string, 0, 50)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		u := fmt.Sprintf("%s/products.json?ids=%s&fields=id,tags&limit=%d",
			c.baseURL, strings.Join(batch, ","), pageLimit)
		var page struct {
			Products []restProduct `json:"products"`
		}
		if _, err := c.getJSON(ctx, u, &page); err != nil {
			return err
		}
		for _, p := range page.Products {
			out[p.ID] = splitTags(p.Tags)
		}
		batch = batch[:0]
		return nil
	}

	for id := range ids {
		batch = append(batch, strconv.FormatInt(id, 10))
		if len(batch) == 50 {
			if err := flush(); err != nil {
				return nil, err
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) fetchCollectionMembership(ctx context.Context, ids map[int64]struct{}) (map[int64][]int64, error) {
	out := make(map[int64][]int64, len(ids))
	next := fmt.Sprintf("%s/collects.json?limit=%d", c.baseURL, pageLimit)
	for next != "" {
		var page struct {
			Collects []restCollect `json:"collects"`
		}
		link, err := c.getJSON(ctx, next, &page)
		if err != nil {
			return nil, err
		}
		for _, col := range page.Collects {
			if _, ok := ids[col.ProductID]; ok {
				out[col.ProductID] = append(out[col.ProductID], col.CollectionID)
			}
		}
		next = link
	}
	return out, nil
}

// getJSON performs one GET with bounded exponential backoff on rate limits
// and transient upstream failures, decodes into v, and returns the next-page
// URL from the Link header if any.
func (c *Client) getJSON(ctx context.Context, rawURL string, v any) (string, error) {
	var nextLink string

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("X-Shopify-Access-Token", c.token)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			c.logger.Warn("shopify rate limited, backing off", "url", rawURL)
			return fmt.Errorf("rate limited: %s", resp.Status)
		case resp.StatusCode >= 500:
			return fmt.Errorf("upstream error: %s", resp.Status)
		case resp.StatusCode >= 400:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return backoff.Permanent(fmt.Errorf("shopify request failed: %s: %s", resp.Status, body))
		}

		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return backoff.Permanent(err)
		}
		nextLink = parseNextLink(resp.Header.Get("Link"))
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = c.maxElapsed
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		return "", infra.WrapRepoErr("shopify order fetch failed", err, infra.KindUpstream)
	}
	return nextLink, nil
}

// parseNextLink extracts the rel="next" URL from a Shopify Link header.
func parseNextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		if !strings.Contains(part, `rel="next"`) {
			continue
		}
		start := strings.IndexByte(part, '<')
		end := strings.IndexByte(part, '>')
		if start >= 0 && end > start {
			return part[start+1 : end]
		}
	}
	return ""
}

func toDomainOrder(ro restOrder, tags map[int64][]string, collections map[int64][]int64) (order.Order, error) {
	subtotal, err := decimal.NewFromString(ro.SubtotalPrice)
	if err != nil {
		return order.Order{}, fmt.Errorf("invalid subtotal %q: %w", ro.SubtotalPrice, err)
	}
	createdAt, err := time.Parse(time.RFC3339, ro.CreatedAt)
	if err != nil {
		return order.Order{}, fmt.Errorf("invalid created_at %q: %w", ro.CreatedAt, err)
	}

	tradeIn := decimal.Zero
	for _, attr := range ro.NoteAttributes {
		if attr.Name == "trade_in_value" {
			if v, err := decimal.NewFromString(attr.Value); err == nil {
				tradeIn = v
			}
		}
	}

	items := make([]order.LineItem, 0, len(ro.LineItems))
	for _, li := range ro.LineItems {
		price, err := decimal.NewFromString(li.Price)
		if err != nil {
			price = decimal.Zero
		}
		items = append(items, order.LineItem{
			ProductID:     li.ProductID,
			Title:         li.Title,
			Quantity:      li.Quantity,
			Price:         price,
			ProductTags:   tags[li.ProductID],
			CollectionIDs: collections[li.ProductID],
		})
	}

	return order.Order{
		ID:   ro.ID,
		Name: ro.Name,
		Source: func() string {
			if ro.SourceName == "" {
				return "unknown"
			}
			return ro.SourceName
		}(),
		Customer: order.Customer{
			ID:    ro.Customer.ID,
			Email: ro.Customer.Email,
			Tier:  tierFromTags(ro.Customer.Tags),
		},
		Subtotal:        subtotal,
		TradeInValue:    tradeIn,
		FinancialStatus: order.FinancialStatus(ro.FinancialStatus),
		CreatedAt:       createdAt,
		LineItems:       items,
	}, nil
}

// Customer tier rides on Shopify customer tags as "tier:<name>".
func tierFromTags(raw string) string {
	for _, t := range splitTags(raw) {
		if strings.HasPrefix(t, "tier:") {
			return strings.TrimPrefix(t, "tier:")
		}
	}
	return ""
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
