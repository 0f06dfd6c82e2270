package totalapps

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/domain/models"
	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/domain/ports"
	pkgerrors "github.com/Awolacademy/omnipay-total-apps-gateway/pkg/errors"
	"github.com/Awolacademy/omnipay-total-apps-gateway/pkg/observability"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Config contains connection settings for the TotalApps transaction API
type Config struct {
	// Endpoint for the transaction API
	// Sandbox: https://sandbox.total-appsgateway.com/api/transact.php
	// Production: https://secure.total-appsgateway.com/api/transact.php
	Endpoint string

	// Gateway credentials sent with every request
	Username string
	Password string

	// HTTP client timeout
	Timeout time.Duration
}

// DefaultConfig returns connection settings for the given environment
func DefaultConfig(environment string) *Config {
	endpoint := "https://secure.total-appsgateway.com/api/transact.php"
	if environment == "sandbox" {
		endpoint = "https://sandbox.total-appsgateway.com/api/transact.php"
	}

	return &Config{
		Endpoint: endpoint,
		Timeout:  30 * time.Second,
	}
}

// Gateway implements ports.Gateway and ports.CustomerVault against the
// TotalApps transaction API. Every operation is one-shot and stateless:
// it assembles a flat key-value payload, POSTs it form-encoded, and wraps
// the query-string reply in a Response.
type Gateway struct {
	config     *Config
	httpClient ports.HTTPClient
	logger     ports.Logger
}

// NewGateway creates a new TotalApps gateway adapter with dependency injection
func NewGateway(config *Config, httpClient ports.HTTPClient, logger ports.Logger) *Gateway {
	return &Gateway{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Authorize authorizes a payment without capturing it
func (g *Gateway) Authorize(ctx context.Context, req *ports.AuthorizeRequest) (*ports.TransactionResult, error) {
	return g.transaction(ctx, models.TransactionTypeAuth, req)
}

// Purchase performs a combined auth + capture (sale)
func (g *Gateway) Purchase(ctx context.Context, req *ports.PurchaseRequest) (*ports.TransactionResult, error) {
	return g.transaction(ctx, models.TransactionTypeSale, req)
}

// transaction handles auth and sale, which share a request shape
func (g *Gateway) transaction(ctx context.Context, tranType models.TransactionType, req *ports.AuthorizeRequest) (*ports.TransactionResult, error) {
	data, err := g.buildPaymentData(tranType, req)
	if err != nil {
		return nil, err
	}

	resp, err := g.send(ctx, string(tranType), data)
	if err != nil {
		return nil, err
	}

	return g.wrapTransaction(resp, data)
}

// Capture captures a previously authorized payment
func (g *Gateway) Capture(ctx context.Context, req *ports.CaptureRequest) (*ports.TransactionResult, error) {
	if req.TransactionID == "" {
		return nil, pkgerrors.NewValidationError("transactionId", "transaction reference is required")
	}

	data := g.basePayload()
	data.Set("type", string(models.TransactionTypeCapture))
	data.Set("transactionid", req.TransactionID)
	if !req.Amount.IsZero() {
		data.Set("amount", formatAmount(req.Amount))
	}

	resp, err := g.send(ctx, string(models.TransactionTypeCapture), data)
	if err != nil {
		return nil, err
	}

	return g.wrapTransaction(resp, data)
}

// Refund returns funds against a settled transaction
func (g *Gateway) Refund(ctx context.Context, req *ports.RefundRequest) (*ports.TransactionResult, error) {
	if req.TransactionID == "" {
		return nil, pkgerrors.NewValidationError("transactionId", "transaction reference is required")
	}

	data := g.basePayload()
	data.Set("type", string(models.TransactionTypeRefund))
	data.Set("transactionid", req.TransactionID)
	if !req.Amount.IsZero() {
		data.Set("amount", formatAmount(req.Amount))
	}

	resp, err := g.send(ctx, string(models.TransactionTypeRefund), data)
	if err != nil {
		return nil, err
	}

	return g.wrapTransaction(resp, data)
}

// Void cancels a transaction before settlement
func (g *Gateway) Void(ctx context.Context, transactionID string) (*ports.TransactionResult, error) {
	if transactionID == "" {
		return nil, pkgerrors.NewValidationError("transactionId", "transaction reference is required")
	}

	data := g.basePayload()
	data.Set("type", string(models.TransactionTypeVoid))
	data.Set("transactionid", transactionID)

	resp, err := g.send(ctx, string(models.TransactionTypeVoid), data)
	if err != nil {
		return nil, err
	}

	return g.wrapTransaction(resp, data)
}

// Credit pushes funds to the customer without a prior sale
func (g *Gateway) Credit(ctx context.Context, req *ports.CreditRequest) (*ports.TransactionResult, error) {
	authReq := &ports.AuthorizeRequest{
		Amount:          req.Amount,
		Currency:        req.Currency,
		Card:            req.Card,
		BankAccount:     req.BankAccount,
		CustomerVaultID: req.CustomerVaultID,
		OrderID:         req.OrderID,
	}

	data, err := g.buildPaymentData(models.TransactionTypeCredit, authReq)
	if err != nil {
		return nil, err
	}

	resp, err := g.send(ctx, string(models.TransactionTypeCredit), data)
	if err != nil {
		return nil, err
	}

	return g.wrapTransaction(resp, data)
}

// basePayload assembles the fields common to every request
func (g *Gateway) basePayload() url.Values {
	data := url.Values{}
	data.Set("username", g.config.Username)
	data.Set("password", g.config.Password)
	return data
}

// buildPaymentData builds the flat wire mapping for auth/sale/credit.
// The funding source is read through the detail object's accessors after
// its Validate contract has been enforced.
func (g *Gateway) buildPaymentData(tranType models.TransactionType, req *ports.AuthorizeRequest) (url.Values, error) {
	data := g.basePayload()
	data.Set("type", string(tranType))
	data.Set("amount", formatAmount(req.Amount))
	if req.Currency != "" {
		data.Set("currency", req.Currency)
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = uuid.NewString()
	}
	data.Set("orderid", orderID)

	if req.Description != "" {
		data.Set("orderdescription", req.Description)
	}

	switch {
	case req.CustomerVaultID != "":
		data.Set("customer_vault_id", req.CustomerVaultID)

	case req.BankAccount != nil:
		if err := req.BankAccount.Validate(); err != nil {
			return nil, err
		}
		applyBankAccount(data, req.BankAccount)
		if req.SECCode != "" {
			data.Set("sec_code", string(req.SECCode))
		}

	case req.Card != nil:
		if err := req.Card.Validate(); err != nil {
			return nil, err
		}
		applyCard(data, req.Card)

	default:
		return nil, pkgerrors.NewValidationError("payment", "a card, bank account, or customer vault reference is required")
	}

	return data, nil
}

// applyBankAccount maps BankAccount accessor values onto wire field names
func applyBankAccount(data url.Values, account *models.BankAccount) {
	data.Set("payment", string(models.PaymentMethodTypeCheck))
	data.Set("checkname", account.Name())
	data.Set("checkaba", account.RoutingNumber())
	data.Set("checkaccount", account.AccountNumber())
	data.Set("account_holder_type", account.HolderType())
	data.Set("account_type", account.AccountType())

	setIfPresent(data, "bank_name", account.BankName())
	setIfPresent(data, "firstname", account.FirstName())
	setIfPresent(data, "lastname", account.LastName())
	setIfPresent(data, "company", account.BillingCompany())
	setIfPresent(data, "address1", account.BillingAddress1())
	setIfPresent(data, "address2", account.BillingAddress2())
	setIfPresent(data, "city", account.BillingCity())
	setIfPresent(data, "state", account.BillingState())
	setIfPresent(data, "zip", account.BillingPostcode())
	setIfPresent(data, "country", account.BillingCountry())
	setIfPresent(data, "phone", account.BillingPhone())
	setIfPresent(data, "fax", account.BillingFax())
	setIfPresent(data, "email", account.Email())

	setIfPresent(data, "shipping_firstname", account.ShippingFirstName())
	setIfPresent(data, "shipping_lastname", account.ShippingLastName())
	setIfPresent(data, "shipping_company", account.ShippingCompany())
	setIfPresent(data, "shipping_address1", account.ShippingAddress1())
	setIfPresent(data, "shipping_address2", account.ShippingAddress2())
	setIfPresent(data, "shipping_city", account.ShippingCity())
	setIfPresent(data, "shipping_state", account.ShippingState())
	setIfPresent(data, "shipping_zip", account.ShippingPostcode())
	setIfPresent(data, "shipping_country", account.ShippingCountry())
}

// applyCard maps CreditCard accessor values onto wire field names
func applyCard(data url.Values, card *models.CreditCard) {
	data.Set("payment", string(models.PaymentMethodTypeCreditCard))
	data.Set("ccnumber", card.Number())
	data.Set("ccexp", card.ExpiryDate())
	setIfPresent(data, "cvv", card.CVV())

	setIfPresent(data, "firstname", card.FirstName())
	setIfPresent(data, "lastname", card.LastName())
	setIfPresent(data, "company", card.Company())
	setIfPresent(data, "address1", card.Address1())
	setIfPresent(data, "address2", card.Address2())
	setIfPresent(data, "city", card.City())
	setIfPresent(data, "state", card.State())
	setIfPresent(data, "zip", card.Postcode())
	setIfPresent(data, "country", card.Country())
	setIfPresent(data, "phone", card.Phone())
	setIfPresent(data, "email", card.Email())

	setIfPresent(data, "shipping_firstname", card.ShippingFirstName())
	setIfPresent(data, "shipping_lastname", card.ShippingLastName())
	setIfPresent(data, "shipping_address1", card.ShippingAddress1())
	setIfPresent(data, "shipping_city", card.ShippingCity())
	setIfPresent(data, "shipping_state", card.ShippingState())
	setIfPresent(data, "shipping_zip", card.ShippingPostcode())
	setIfPresent(data, "shipping_country", card.ShippingCountry())
}

func setIfPresent(data url.Values, key, value string) {
	if value != "" {
		data.Set(key, value)
	}
}

func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// send POSTs the form payload and parses the query-string reply
func (g *Gateway) send(ctx context.Context, operation string, data url.Values) (*Response, error) {
	if g.logger != nil {
		g.logger.Info("sending request to TotalApps gateway",
			ports.String("type", data.Get("type")),
			ports.String("operation", operation),
		)
	}

	done := observability.TrackGatewayRequest(operation)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", g.config.Endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		done("error")
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	httpResp, err := g.httpClient.Do(httpReq)
	if err != nil {
		done("network_error")
		return nil, pkgerrors.NewPaymentError("NETWORK_ERROR", "Failed to connect to payment gateway", pkgerrors.CategoryNetworkError, true)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		done("error")
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if httpResp.StatusCode >= 500 {
		done("gateway_error")
		return nil, pkgerrors.NewPaymentError("GATEWAY_ERROR", "Payment gateway error", pkgerrors.CategorySystemError, true)
	}

	if httpResp.StatusCode >= 400 {
		done("request_error")
		return nil, pkgerrors.NewPaymentError("REQUEST_ERROR", "Invalid request to payment gateway", pkgerrors.CategoryInvalidRequest, false)
	}

	resp, err := ParseResponse(body)
	if err != nil {
		done("parse_error")
		return nil, err
	}

	done(string(resp.Status()))
	return resp, nil
}

// wrapTransaction converts a raw gateway reply into a TransactionResult,
// surfacing declines and errors as PaymentError
func (g *Gateway) wrapTransaction(resp *Response, data url.Values) (*ports.TransactionResult, error) {
	if !resp.IsSuccessful() {
		codeInfo := GetResponseCode(resp.ResponseCode())
		if g.logger != nil {
			g.logger.Warn("gateway declined transaction",
				ports.String("response_code", resp.ResponseCode()),
				ports.String("responsetext", resp.Message()),
			)
		}
		return nil, codeInfo.ToPaymentError(resp.Message())
	}

	orderID := resp.OrderID()
	if orderID == "" {
		orderID = data.Get("orderid")
	}

	return &ports.TransactionResult{
		TransactionID: resp.TransactionID(),
		OrderID:       orderID,
		Status:        resp.Status(),
		ResponseCode:  resp.ResponseCode(),
		AuthCode:      resp.AuthCode(),
		Message:       resp.Message(),
		AVSResponse:   resp.AVSResponse(),
		CVVResponse:   resp.CVVResponse(),
		Timestamp:     time.Now(),
	}, nil
}
