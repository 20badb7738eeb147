package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmarins/rently/internal/lease"
	"github.com/dmarins/rently/internal/property"
	"github.com/dmarins/rently/internal/tenant"
)

// OwnerAccounts persists a provisioned payout account id back on the owner.
type OwnerAccounts interface {
	SetPayoutAccountID(ctx context.Context, id uuid.UUID, accountID string) error
}

// TenantCustomers persists a provisioned customer id back on the tenant.
type TenantCustomers interface {
	SetCustomerID(ctx context.Context, id uuid.UUID, customerID string) error
}

// Provisioner implements lease.Biller: it lazily registers the tenant as a
// customer and the owner as a payout subaccount, then opens the recurring
// subscription with the configured split.
type Provisioner struct {
	client       *Client
	owners       OwnerAccounts
	tenants      TenantCustomers
	splitPercent float64
}

func NewProvisioner(client *Client, owners OwnerAccounts, tenants TenantCustomers, splitPercent float64) *Provisioner {
	return &Provisioner{
		client:       client,
		owners:       owners,
		tenants:      tenants,
		splitPercent: splitPercent,
	}
}

func (p *Provisioner) SubscribeLease(ctx context.Context, l *lease.Lease, prop *property.Property, ten *tenant.Tenant) (string, error) {
	customerID, err := p.ensureCustomer(ctx, ten)
	if err != nil {
		return "", err
	}

	walletID, err := p.ensurePayoutAccount(ctx, prop)
	if err != nil {
		return "", err
	}

	subscriptionID, err := p.client.CreateRecurringBilling(ctx, SubscriptionParams{
		CustomerID:   customerID,
		AmountCents:  l.Value,
		FirstDueDate: firstChargeDate(l),
		WalletID:     walletID,
		SplitPercent: p.splitPercent,
		Description:  fmt.Sprintf("rent for %s", prop.Address),
	})
	if err != nil {
		return "", err
	}

	return subscriptionID, nil
}

func (p *Provisioner) ensureCustomer(ctx context.Context, ten *tenant.Tenant) (string, error) {
	if ten.CustomerID != nil {
		return *ten.CustomerID, nil
	}

	customerID, err := p.client.CreateCustomer(ctx, CustomerParams{
		Name:  ten.Name,
		Email: ten.Email,
		TaxID: ten.TaxID,
		Phone: ten.Phone,
	})
	if err != nil {
		return "", fmt.Errorf("creating billing customer: %w", err)
	}

	if err := p.tenants.SetCustomerID(ctx, ten.ID, customerID); err != nil {
		return "", fmt.Errorf("storing customer id: %w", err)
	}

	ten.CustomerID = &customerID

	return customerID, nil
}

func (p *Provisioner) ensurePayoutAccount(ctx context.Context, prop *property.Property) (string, error) {
	o := prop.Owner
	if o == nil {
		return "", fmt.Errorf("property %s loaded without owner", prop.ID)
	}

	if o.PayoutAccountID != nil {
		return *o.PayoutAccountID, nil
	}

	walletID, err := p.client.CreatePayoutAccount(ctx, PayoutAccountParams{
		Name:  o.Name,
		Email: o.Email,
		TaxID: o.TaxID,
		Phone: o.Phone,
	})
	if err != nil {
		return "", fmt.Errorf("creating payout account: %w", err)
	}

	if err := p.owners.SetPayoutAccountID(ctx, o.ID, walletID); err != nil {
		return "", fmt.Errorf("storing payout account id: %w", err)
	}

	o.PayoutAccountID = &walletID

	return walletID, nil
}

// firstChargeDate is when regular billing begins: the lease start, or the
// agreed charge start when a deposit advance period defers it.
func firstChargeDate(l *lease.Lease) time.Time {
	if l.GuaranteeChargeStart != nil {
		return *l.GuaranteeChargeStart
	}

	return l.StartDate
}
