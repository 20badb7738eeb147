package billing_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarins/rently/internal/billing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *billing.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return billing.NewClient(billing.Config{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
}

func TestClient_CreateCustomer(t *testing.T) {
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/customers", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("access_token"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"id": "cus_000001"})
	})

	id, err := client.CreateCustomer(context.Background(), billing.CustomerParams{
		Name:  "João Souza",
		Email: "joao@example.com",
		TaxID: "987.654.321-00",
		Phone: "(11) 98765-4321",
	})
	require.NoError(t, err)
	assert.Equal(t, "cus_000001", id)

	// Tax id and phone go out with formatting stripped.
	assert.Equal(t, "98765432100", gotBody["cpfCnpj"])
	assert.Equal(t, "11987654321", gotBody["mobilePhone"])
}

func TestClient_CreateCustomer_ProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]string{{"description": "invalid cpfCnpj"}},
		})
	})

	_, err := client.CreateCustomer(context.Background(), billing.CustomerParams{Name: "x"})

	var providerErr *billing.ProviderError

	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusBadRequest, providerErr.StatusCode)
	assert.Equal(t, "invalid cpfCnpj", providerErr.Message)
}

func TestClient_CreateRecurringBilling_SendsSplit(t *testing.T) {
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscriptions", r.URL.Path)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]string{"id": "sub_000042"})
	})

	id, err := client.CreateRecurringBilling(context.Background(), billing.SubscriptionParams{
		CustomerID:   "cus_000001",
		AmountCents:  250000,
		FirstDueDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		WalletID:     "wal_owner",
		SplitPercent: 90,
		Description:  "rent for Av. Paulista, 1000",
	})
	require.NoError(t, err)
	assert.Equal(t, "sub_000042", id)

	assert.Equal(t, "cus_000001", gotBody["customer"])
	assert.Equal(t, 2500.0, gotBody["value"])
	assert.Equal(t, "2024-01-01", gotBody["nextDueDate"])
	assert.Equal(t, "MONTHLY", gotBody["cycle"])

	split, ok := gotBody["split"].([]any)
	require.True(t, ok)
	require.Len(t, split, 1)

	entry := split[0].(map[string]any)
	assert.Equal(t, "wal_owner", entry["walletId"])
	assert.Equal(t, 90.0, entry["percentualValue"])
}

func TestClient_ListGeneratedInvoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscriptions/sub_000042/payments", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "pay_1", "status": "PENDING", "value": 2500.00, "dueDate": "2024-02-01"},
				{"id": "pay_2", "status": "RECEIVED", "value": 2500.00, "dueDate": "2024-01-01"},
			},
		})
	})

	invoices, err := client.ListGeneratedInvoices(context.Background(), "sub_000042")
	require.NoError(t, err)
	require.Len(t, invoices, 2)

	assert.Equal(t, "pay_1", invoices[0].ID)
	assert.Equal(t, int64(250000), invoices[0].AmountCents)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), invoices[0].DueDate)
}

func TestClient_ListGeneratedInvoices_RetriesTransientFailures(t *testing.T) {
	attempts := 0

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "pay_1", "status": "PENDING", "value": 2500.00, "dueDate": "2024-02-01"},
			},
		})
	})

	invoices, err := client.ListGeneratedInvoices(context.Background(), "sub_000042")
	require.NoError(t, err)
	assert.Len(t, invoices, 1)
	assert.Equal(t, 3, attempts)
}
