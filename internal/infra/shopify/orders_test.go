//go:build unit

package shopify

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersPage = `{"orders": [
	{"id": 1, "name": "#1001", "source_name": "web", "subtotal_price": "100.00",
	 "financial_status": "paid", "created_at": "2026-06-01T10:00:00Z",
	 "customer": {"id": 42, "email": "a@shop.test"}},
	{"id": 2, "name": "#1002", "source_name": "pos", "subtotal_price": "50.00",
	 "financial_status": "paid", "created_at": "2026-06-02T10:00:00Z",
	 "customer": {"id": 43, "email": "b@shop.test"}},
	{"id": 3, "name": "#1003", "source_name": "", "subtotal_price": "25.00",
	 "financial_status": "paid", "created_at": "2026-06-03T10:00:00Z",
	 "customer": {"id": 44, "email": "c@shop.test"}}
]}`

func newTestClient(srv *httptest.Server) *Client {
	return &Client{
		httpClient: srv.Client(),
		baseURL:    srv.URL,
		token:      "test-token",
		maxElapsed: time.Second,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestListOrders_SingleScanServesAllRequestedSources(t *testing.T) {
	orderScans := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/orders.json", func(w http.ResponseWriter, _ *http.Request) {
		orderScans++
		_, _ = w.Write([]byte(ordersPage))
	})
	mux.HandleFunc("/collects.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"collects": []}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv)
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	orders, err := c.ListOrders(context.Background(), []string{"web", "unknown"}, start, end)
	require.NoError(t, err)

	assert.Equal(t, 1, orderScans)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, "web", orders[0].Source)
	// Blank source_name is normalized the same way ListSources reports it.
	assert.Equal(t, int64(3), orders[1].ID)
	assert.Equal(t, "unknown", orders[1].Source)
}

func TestListSources_CountsAndNormalizesBlankChannel(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/orders.json", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(ordersPage))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(srv)
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	counts, total, err := c.ListSources(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, 3, total)
	require.Len(t, counts, 3)
	assert.Equal(t, "pos", counts[0].Name)
	assert.Equal(t, "unknown", counts[1].Name)
	assert.Equal(t, "web", counts[2].Name)
}

func TestParseNextLink(t *testing.T) {
	header := `<https://shop.myshopify.com/admin/api/2024-07/orders.json?page_info=abc>; rel="next", ` +
		`<https://shop.myshopify.com/admin/api/2024-07/orders.json?page_info=xyz>; rel="previous"`

	assert.Equal(t, "https://shop.myshopify.com/admin/api/2024-07/orders.json?page_info=abc", parseNextLink(header))
	assert.Empty(t, parseNextLink(`<https://x>; rel="previous"`))
	assert.Empty(t, parseNextLink(""))
}
