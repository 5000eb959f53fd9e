package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"gepe-server/internal/observability"
)

const baseURL = "https://api.mercadopago.com"

var (
	ErrNotConfigured   = errors.New("mercadopago access token is not configured")
	ErrPaymentNotFound = errors.New("payment not found in mercadopago")
)

// PreferenceItem is one purchasable line of a checkout preference.
type PreferenceItem struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	PictureURL  string  `json:"picture_url,omitempty"`
	CategoryID  string  `json:"category_id,omitempty"`
	Quantity    int64   `json:"quantity"`
	CurrencyID  string  `json:"currency_id"`
	UnitPrice   float64 `json:"unit_price"`
}

type PreferencePhone struct {
	Number string `json:"number,omitempty"`
}

// Identification is a tax or national id document.
type Identification struct {
	Type   string `json:"type,omitempty"`
	Number string `json:"number,omitempty"`
}

type PreferencePayer struct {
	Name           string           `json:"name,omitempty"`
	Surname        string           `json:"surname,omitempty"`
	Email          string           `json:"email,omitempty"`
	Phone          *PreferencePhone `json:"phone,omitempty"`
	Identification *Identification  `json:"identification,omitempty"`
}

type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceRequest is the payload for POST /checkout/preferences.
type PreferenceRequest struct {
	Items               []PreferenceItem `json:"items"`
	Payer               *PreferencePayer `json:"payer,omitempty"`
	BackURLs            *BackURLs        `json:"back_urls,omitempty"`
	AutoReturn          string           `json:"auto_return,omitempty"`
	ExternalReference   string           `json:"external_reference,omitempty"`
	NotificationURL     string           `json:"notification_url,omitempty"`
	StatementDescriptor string           `json:"statement_descriptor,omitempty"`
}

// PreferenceResponse carries the checkout redirect targets.
type PreferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

type Cardholder struct {
	Name           string         `json:"name"`
	Identification Identification `json:"identification"`
}

type Card struct {
	LastFourDigits  string     `json:"last_four_digits"`
	PaymentMethodID string     `json:"payment_method_id"`
	Cardholder      Cardholder `json:"cardholder"`
}

type Payer struct {
	Email          string         `json:"email"`
	Identification Identification `json:"identification"`
}

// AdditionalInfoItem mirrors the checkout items echoed back on the payment.
// The API serializes quantity and unit_price as strings here.
type AdditionalInfoItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

type AdditionalInfoPayer struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AdditionalInfo struct {
	Items []AdditionalInfoItem `json:"items"`
	Payer AdditionalInfoPayer  `json:"payer"`
}

type Refund struct {
	ID        int64   `json:"id"`
	PaymentID int64   `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
}

// Chargeback is a dispute opened against a payment.
type Chargeback struct {
	ID int64 `json:"id"`
}

// Payment is the subset of GET /v1/payments/{id} this service reads.
type Payment struct {
	ID                        int64          `json:"id"`
	Status                    string         `json:"status"`
	StatusDetail              string         `json:"status_detail"`
	ExternalReference         string         `json:"external_reference"`
	TransactionAmount         float64        `json:"transaction_amount"`
	TransactionAmountRefunded float64        `json:"transaction_amount_refunded"`
	CurrencyID                string         `json:"currency_id"`
	PaymentMethodID           string         `json:"payment_method_id"`
	PaymentTypeID             string         `json:"payment_type_id"`
	DateCreated               string         `json:"date_created"`
	DateApproved              string         `json:"date_approved"`
	DateLastUpdated           string         `json:"date_last_updated"`
	Card                      Card           `json:"card"`
	Payer                     Payer          `json:"payer"`
	AdditionalInfo            AdditionalInfo `json:"additional_info"`
	Refunds                   []Refund       `json:"refunds"`
	Chargebacks               []Chargeback   `json:"chargebacks"`
}

type searchResponse struct {
	Results []Payment `json:"results"`
}

// Client talks to the Mercado Pago REST API with a bearer access token.
type Client struct {
	accessToken string
	httpClient  *http.Client
	logger      *observability.Logger
}

// NewClient creates a Mercado Pago client. An empty token leaves the client
// disabled; calls then fail with ErrNotConfigured.
func NewClient(accessToken string, logger *observability.Logger) *Client {
	return &Client{
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// IsEnabled returns true if the client has an access token configured
func (c *Client) IsEnabled() bool {
	return c.accessToken != ""
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, int, error) {
	if c.accessToken == "" {
		return nil, 0, ErrNotConfigured
	}

	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal mercadopago request: %w", err)
		}
		body = bytes.NewBuffer(jsonPayload)
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create mercadopago request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "failed to call mercadopago API", err)
		return nil, 0, fmt.Errorf("failed to call mercadopago API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read mercadopago response: %w", err)
	}
	return respBody, resp.StatusCode, nil
}

// CreatePreference registers a checkout preference and returns the redirect
// targets.
func (c *Client) CreatePreference(ctx context.Context, req PreferenceRequest) (PreferenceResponse, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "external_reference", Value: req.ExternalReference},
	)

	respBody, status, err := c.do(ctx, http.MethodPost, "/checkout/preferences", req)
	if err != nil {
		return PreferenceResponse{}, err
	}
	if status < 200 || status >= 300 {
		c.logger.Error(ctx, "mercadopago preference rejected", fmt.Errorf("status %d: %s", status, respBody))
		return PreferenceResponse{}, fmt.Errorf("mercadopago API returned status %d", status)
	}

	var preference PreferenceResponse
	if err := json.Unmarshal(respBody, &preference); err != nil {
		return PreferenceResponse{}, fmt.Errorf("failed to parse preference response: %w", err)
	}

	c.logger.Info(ctx, "mercadopago preference created")
	return preference, nil
}

// GetPayment fetches a payment by id. The raw body is returned alongside the
// decoded payment so callers can persist the provider snapshot.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (Payment, []byte, error) {
	respBody, status, err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil)
	if err != nil {
		return Payment{}, nil, err
	}
	if status == http.StatusNotFound {
		return Payment{}, nil, ErrPaymentNotFound
	}
	if status < 200 || status >= 300 {
		return Payment{}, nil, fmt.Errorf("mercadopago API returned status %d", status)
	}

	var payment Payment
	if err := json.Unmarshal(respBody, &payment); err != nil {
		return Payment{}, nil, fmt.Errorf("failed to parse payment response: %w", err)
	}
	return payment, respBody, nil
}

// SearchPaymentsByExternalReference lists the payments created for an
// external reference, newest first per the API default.
func (c *Client) SearchPaymentsByExternalReference(ctx context.Context, externalReference string) ([]Payment, error) {
	query := url.Values{"external_reference": {externalReference}}
	path := "/v1/payments/search?" + query.Encode()
	respBody, status, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("mercadopago API returned status %d", status)
	}

	var search searchResponse
	if err := json.Unmarshal(respBody, &search); err != nil {
		return nil, fmt.Errorf("failed to parse payment search response: %w", err)
	}
	return search.Results, nil
}

// RefundPayment refunds a payment. A nil amount refunds the full remaining
// balance.
func (c *Client) RefundPayment(ctx context.Context, paymentID string, amount *float64) (Refund, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "mp_payment_id", Value: paymentID},
	)

	var payload interface{}
	if amount != nil {
		payload = map[string]float64{"amount": *amount}
	}

	respBody, status, err := c.do(ctx, http.MethodPost, "/v1/payments/"+paymentID+"/refunds", payload)
	if err != nil {
		return Refund{}, err
	}
	if status == http.StatusNotFound {
		return Refund{}, ErrPaymentNotFound
	}
	if status < 200 || status >= 300 {
		c.logger.Error(ctx, "mercadopago refund rejected", fmt.Errorf("status %d: %s", status, respBody))
		return Refund{}, fmt.Errorf("mercadopago API returned status %d", status)
	}

	var refund Refund
	if err := json.Unmarshal(respBody, &refund); err != nil {
		return Refund{}, fmt.Errorf("failed to parse refund response: %w", err)
	}

	c.logger.Info(ctx, "mercadopago refund created")
	return refund, nil
}
