package ports

import (
	"context"
	"time"

	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/domain/models"
	"github.com/shopspring/decimal"
)

// AuthorizeRequest represents a request to authorize a payment without
// capturing it. Exactly one of Card, BankAccount, or CustomerVaultID
// identifies the funding source.
type AuthorizeRequest struct {
	Amount          decimal.Decimal
	Currency        string
	Card            *models.CreditCard
	BankAccount     *models.BankAccount
	CustomerVaultID string
	SECCode         models.SECCode
	OrderID         string
	Description     string
}

// PurchaseRequest represents a combined auth + capture (sale)
type PurchaseRequest = AuthorizeRequest

// CaptureRequest captures a previously authorized payment
type CaptureRequest struct {
	TransactionID string
	Amount        decimal.Decimal // can be partial
}

// RefundRequest returns funds against a settled transaction
type RefundRequest struct {
	TransactionID string
	Amount        decimal.Decimal // can be partial
}

// CreditRequest pushes funds to a funding source without a prior sale
type CreditRequest struct {
	Amount          decimal.Decimal
	Currency        string
	Card            *models.CreditCard
	BankAccount     *models.BankAccount
	CustomerVaultID string
	OrderID         string
}

// TransactionResult is the normalized outcome of a gateway operation
type TransactionResult struct {
	TransactionID string
	OrderID       string
	Status        models.TransactionStatus
	ResponseCode  string
	AuthCode      string
	Message       string
	AVSResponse   string
	CVVResponse   string
	Timestamp     time.Time
}

// IsSuccessful reports whether the gateway approved the operation
func (r *TransactionResult) IsSuccessful() bool {
	return r.Status == models.StatusApproved
}

// Gateway defines the generic transaction interface the adapter implements
type Gateway interface {
	// Authorize authorizes a payment without capturing it
	Authorize(ctx context.Context, req *AuthorizeRequest) (*TransactionResult, error)

	// Purchase performs a combined auth + capture
	Purchase(ctx context.Context, req *PurchaseRequest) (*TransactionResult, error)

	// Capture captures a previously authorized payment
	Capture(ctx context.Context, req *CaptureRequest) (*TransactionResult, error)

	// Refund returns funds for a captured payment
	Refund(ctx context.Context, req *RefundRequest) (*TransactionResult, error)

	// Void cancels a transaction before settlement
	Void(ctx context.Context, transactionID string) (*TransactionResult, error)

	// Credit pushes funds to the customer without a prior sale
	Credit(ctx context.Context, req *CreditRequest) (*TransactionResult, error)
}

// StoreCustomerRequest stores a funding source in the processor vault
type StoreCustomerRequest struct {
	Card        *models.CreditCard
	BankAccount *models.BankAccount
	OrderID     string
}

// UpdateCustomerRequest replaces the funding source behind a vault record
type UpdateCustomerRequest struct {
	CustomerVaultID string
	Card            *models.CreditCard
	BankAccount     *models.BankAccount
}

// VaultResult is the normalized outcome of a vault operation
type VaultResult struct {
	CustomerVaultID string
	Status          models.TransactionStatus
	ResponseCode    string
	Message         string
	Timestamp       time.Time
}

// IsSuccessful reports whether the vault operation was accepted
func (r *VaultResult) IsSuccessful() bool {
	return r.Status == models.StatusApproved
}

// CustomerVault defines stored-credential management against the processor
type CustomerVault interface {
	// StoreCustomer vaults a card or bank account and returns its reference
	StoreCustomer(ctx context.Context, req *StoreCustomerRequest) (*VaultResult, error)

	// UpdateCustomer replaces the payment details behind a vault reference
	UpdateCustomer(ctx context.Context, req *UpdateCustomerRequest) (*VaultResult, error)

	// DeleteCustomer removes a vault record
	DeleteCustomer(ctx context.Context, customerVaultID string) (*VaultResult, error)
}
