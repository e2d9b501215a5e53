package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bullmose/cutlist-backend/internal/modules/order"
)

// shopifySource fetches unfulfilled orders from the Shopify Admin REST API.
type shopifySource struct {
	shopURL     string
	apiVersion  string
	accessToken string
	limit       int
	client      *http.Client
}

// NewShopifySource creates a Source backed by a Shopify store.
func NewShopifySource(shopURL, apiVersion, accessToken string) Source {
	return &shopifySource{
		shopURL:     shopURL,
		apiVersion:  apiVersion,
		accessToken: accessToken,
		limit:       10,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

// ordersEnvelope is the Admin API response wrapper.
type ordersEnvelope struct {
	Orders []order.Order `json:"orders"`
}

func (s *shopifySource) FetchPending(ctx context.Context) ([]order.Order, error) {
	base := s.shopURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	url := fmt.Sprintf("%s/admin/api/%s/orders.json?fulfillment_status=unfulfilled&limit=%d",
		base, s.apiVersion, s.limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Shopify-Access-Token", s.accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch shopify orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("shopify auth failed (%d): check access token and shop URL", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shopify returned status %d", resp.StatusCode)
	}

	var envelope ordersEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode shopify orders: %w", err)
	}
	return envelope.Orders, nil
}
