package totalapps

import (
	"context"
	"net/url"
	"time"

	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/domain/models"
	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/domain/ports"
	pkgerrors "github.com/Awolacademy/omnipay-total-apps-gateway/pkg/errors"
	"github.com/google/uuid"
)

// Vault operations reuse the transaction payload shape but replace the
// generic "type" key with a customer_vault action and vault id.

// StoreCustomer vaults a card or bank account and returns its reference
func (g *Gateway) StoreCustomer(ctx context.Context, req *ports.StoreCustomerRequest) (*ports.VaultResult, error) {
	data := g.basePayload()

	switch {
	case req.BankAccount != nil:
		if err := req.BankAccount.Validate(); err != nil {
			return nil, err
		}
		applyBankAccount(data, req.BankAccount)

	case req.Card != nil:
		if err := req.Card.Validate(); err != nil {
			return nil, err
		}
		applyCard(data, req.Card)

	default:
		return nil, pkgerrors.NewValidationError("payment", "a card or bank account is required")
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = uuid.NewString()
	}
	data.Set("orderid", orderID)

	return g.vaultRequest(ctx, data, models.VaultActionStore, "")
}

// UpdateCustomer replaces the payment details behind a vault reference
func (g *Gateway) UpdateCustomer(ctx context.Context, req *ports.UpdateCustomerRequest) (*ports.VaultResult, error) {
	if req.CustomerVaultID == "" {
		return nil, pkgerrors.NewValidationError("customerVaultId", "customer vault reference is required")
	}

	data := g.basePayload()

	switch {
	case req.BankAccount != nil:
		if err := req.BankAccount.Validate(); err != nil {
			return nil, err
		}
		applyBankAccount(data, req.BankAccount)

	case req.Card != nil:
		if err := req.Card.Validate(); err != nil {
			return nil, err
		}
		applyCard(data, req.Card)

	default:
		return nil, pkgerrors.NewValidationError("payment", "a card or bank account is required")
	}

	return g.vaultRequest(ctx, data, models.VaultActionUpdate, req.CustomerVaultID)
}

// DeleteCustomer removes a vault record
func (g *Gateway) DeleteCustomer(ctx context.Context, customerVaultID string) (*ports.VaultResult, error) {
	if customerVaultID == "" {
		return nil, pkgerrors.NewValidationError("customerVaultId", "customer vault reference is required")
	}

	data := g.basePayload()
	return g.vaultRequest(ctx, data, models.VaultActionDelete, customerVaultID)
}

// vaultRequest strips the generic transaction type from the payload,
// substitutes the vault action/id pair, and sends the request
func (g *Gateway) vaultRequest(ctx context.Context, data url.Values, action models.VaultAction, vaultID string) (*ports.VaultResult, error) {
	data.Del("type")
	data.Set("customer_vault", string(action))
	if vaultID != "" {
		data.Set("customer_vault_id", vaultID)
	}

	resp, err := g.send(ctx, string(action), data)
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccessful() {
		codeInfo := GetResponseCode(resp.ResponseCode())
		if g.logger != nil {
			g.logger.Warn("gateway rejected vault request",
				ports.String("customer_vault", string(action)),
				ports.String("response_code", resp.ResponseCode()),
			)
		}
		return nil, codeInfo.ToPaymentError(resp.Message())
	}

	resultVaultID := resp.CustomerVaultID()
	if resultVaultID == "" {
		resultVaultID = vaultID
	}

	return &ports.VaultResult{
		CustomerVaultID: resultVaultID,
		Status:          resp.Status(),
		ResponseCode:    resp.ResponseCode(),
		Message:         resp.Message(),
		Timestamp:       time.Now(),
	}, nil
}
