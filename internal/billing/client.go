// Package billing is the bridge to the external billing provider. The
// provider generates invoices for recurring rent and splits disbursement
// between the platform and the property owner; this package only speaks its
// request/response surface.
package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// ProviderError is any non-success answer from the billing provider.
// Callers on the lease-origination path treat it as non-fatal.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("billing provider error: status %d: %s", e.StatusCode, e.Message)
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

type CustomerParams struct {
	Name  string
	Email string
	TaxID string
	Phone string
}

// CreateCustomer registers a tenant as a billing customer.
func (c *Client) CreateCustomer(ctx context.Context, params CustomerParams) (string, error) {
	body := map[string]any{
		"name":        params.Name,
		"email":       params.Email,
		"cpfCnpj":     digitsOnly(params.TaxID),
		"mobilePhone": digitsOnly(params.Phone),
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/customers", body, &resp); err != nil {
		return "", err
	}

	return resp.ID, nil
}

type PayoutAccountParams struct {
	Name  string
	Email string
	TaxID string
	Phone string
}

// CreatePayoutAccount provisions a subaccount for an owner; its wallet
// receives the owner's share of the rent split.
func (c *Client) CreatePayoutAccount(ctx context.Context, params PayoutAccountParams) (string, error) {
	taxID := digitsOnly(params.TaxID)

	companyType := "INDIVIDUAL"
	if len(taxID) > 11 {
		companyType = "LIMITED"
	}

	body := map[string]any{
		"name":        params.Name,
		"email":       params.Email,
		"cpfCnpj":     taxID,
		"mobilePhone": digitsOnly(params.Phone),
		"companyType": companyType,
	}

	var resp struct {
		WalletID string `json:"walletId"`
	}
	if err := c.do(ctx, http.MethodPost, "/accounts", body, &resp); err != nil {
		return "", err
	}

	return resp.WalletID, nil
}

type SubscriptionParams struct {
	CustomerID   string
	AmountCents  int64
	FirstDueDate time.Time
	WalletID     string
	SplitPercent float64
	Description  string
}

// CreateRecurringBilling opens a monthly subscription for the tenant with a
// percentage split to the owner's wallet.
func (c *Client) CreateRecurringBilling(ctx context.Context, params SubscriptionParams) (string, error) {
	body := map[string]any{
		"customer":    params.CustomerID,
		"billingType": "BOLETO",
		"value":       centsToValue(params.AmountCents),
		"nextDueDate": params.FirstDueDate.Format(time.DateOnly),
		"cycle":       "MONTHLY",
		"description": params.Description,
		"split": []map[string]any{
			{
				"walletId":        params.WalletID,
				"percentualValue": params.SplitPercent,
			},
		},
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/subscriptions", body, &resp); err != nil {
		return "", err
	}

	return resp.ID, nil
}

// Invoice is one charge the provider generated under a subscription.
type Invoice struct {
	ID          string
	Status      string
	AmountCents int64
	DueDate     time.Time
}

// ListGeneratedInvoices fetches the charges generated for a subscription.
// The read is idempotent, so transient failures are retried with backoff.
func (c *Client) ListGeneratedInvoices(ctx context.Context, subscriptionID string) ([]Invoice, error) {
	var resp struct {
		Data []struct {
			ID      string  `json:"id"`
			Status  string  `json:"status"`
			Value   float64 `json:"value"`
			DueDate string  `json:"dueDate"`
		} `json:"data"`
	}

	operation := func() error {
		err := c.do(ctx, http.MethodGet, "/subscriptions/"+subscriptionID+"/payments", nil, &resp)

		var providerErr *ProviderError
		if errors.As(err, &providerErr) && providerErr.StatusCode < 500 {
			return backoff.Permanent(err)
		}

		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	invoices := make([]Invoice, 0, len(resp.Data))

	for _, d := range resp.Data {
		inv := Invoice{
			ID:          d.ID,
			Status:      d.Status,
			AmountCents: valueToCents(d.Value),
		}

		if due, err := time.Parse(time.DateOnly, d.DueDate); err == nil {
			inv.DueDate = due
		}

		invoices = append(invoices, inv)
	}

	return invoices, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ProviderError{
			StatusCode: resp.StatusCode,
			Message:    providerMessage(resp.Body),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// providerMessage digs the human-readable description out of the provider's
// error envelope, falling back to the raw body.
func providerMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "no response body"
	}

	var envelope struct {
		Errors []struct {
			Description string `json:"description"`
		} `json:"errors"`
	}

	if err := json.Unmarshal(raw, &envelope); err == nil && len(envelope.Errors) > 0 {
		return envelope.Errors[0].Description
	}

	return string(raw)
}

func digitsOnly(s string) string {
	var b strings.Builder

	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// The provider speaks decimal currency; the ledger keeps cents.
func centsToValue(cents int64) float64 { return float64(cents) / 100 }

func valueToCents(value float64) int64 { return int64(value*100 + 0.5) }
