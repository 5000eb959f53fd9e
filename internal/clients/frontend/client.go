package frontend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gepe-server/internal/observability"
)

// Client notifies the storefront that cached pages must be rebuilt after an
// admin change. Revalidation is best effort: a failure is logged and
// swallowed so the admin operation itself never fails because of it.
type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a revalidation client pointing at the storefront.
func NewClient(baseURL, secret string, logger *observability.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// IsEnabled returns true if a storefront URL is configured
func (c *Client) IsEnabled() bool {
	return c.baseURL != ""
}

type revalidateRequest struct {
	Secret string   `json:"secret"`
	Type   string   `json:"type,omitempty"`
	Paths  []string `json:"paths,omitempty"`
}

// Revalidate posts a cache invalidation for the given content type and
// paths. Returns whether the storefront acknowledged it.
func (c *Client) Revalidate(ctx context.Context, contentType string, paths []string) bool {
	if !c.IsEnabled() {
		return false
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "revalidate_type", Value: contentType},
	)

	payload, err := json.Marshal(revalidateRequest{
		Secret: c.secret,
		Type:   contentType,
		Paths:  paths,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to marshal revalidation request", err)
		return false
	}

	url := c.baseURL + "/api/revalidate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		c.logger.Error(ctx, "failed to create revalidation request", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.InfoWithError(ctx, "storefront revalidation unreachable", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Info(ctx, fmt.Sprintf("storefront revalidation rejected with status %d", resp.StatusCode))
		return false
	}

	c.logger.Info(ctx, "storefront revalidated")
	return true
}

// RevalidateProducts rebuilds the home page and, when a slug is given, the
// product detail page.
func (c *Client) RevalidateProducts(ctx context.Context, slug string) bool {
	paths := []string{"/"}
	if slug != "" {
		paths = append(paths, "/producto/"+slug)
	}
	return c.Revalidate(ctx, "products", paths)
}

// RevalidateClubs rebuilds the home page and, when a slug is given, the
// club page.
func (c *Client) RevalidateClubs(ctx context.Context, slug string) bool {
	paths := []string{"/"}
	if slug != "" {
		paths = append(paths, "/clubes/"+slug)
	}
	return c.Revalidate(ctx, "clubs", paths)
}

// RevalidatePrices rebuilds the pages that show tier prices.
func (c *Client) RevalidatePrices(ctx context.Context) bool {
	return c.Revalidate(ctx, "prices", nil)
}

// RevalidateHero rebuilds the home page hero carousel.
func (c *Client) RevalidateHero(ctx context.Context) bool {
	return c.Revalidate(ctx, "hero", nil)
}
