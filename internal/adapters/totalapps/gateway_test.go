package totalapps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/domain/models"
	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/domain/ports"
	pkgerrors "github.com/Awolacademy/omnipay-total-apps-gateway/pkg/errors"
	"github.com/Awolacademy/omnipay-total-apps-gateway/test/mocks"
)

const approvedBody = "response=1&responsetext=SUCCESS&authcode=123456&transactionid=2001234567&orderid=order-1&response_code=100&avsresponse=Y&cvvresponse=M"

// newRecordingServer returns a gateway wired to a stub endpoint that replies
// with the given body and records the last submitted form
func newRecordingServer(t *testing.T, statusCode int, body string) (*Gateway, *url.Values) {
	t.Helper()

	captured := &url.Values{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		*captured = r.PostForm
		w.WriteHeader(statusCode)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	gateway := NewGateway(&Config{
		Endpoint: server.URL,
		Username: "merchant",
		Password: "secret",
		Timeout:  5 * time.Second,
	}, server.Client(), mocks.NewMockLogger())

	return gateway, captured
}

func testBankAccount() *models.BankAccount {
	return models.NewBankAccount(map[string]string{
		"accountNumber":         "12345678",
		"routingNumber":         "021000021",
		"bankAccountType":       "checking",
		"bankHolderAccountType": "personal",
		"name":                  "Jane Doe",
		"bankName":              "First National",
	})
}

func testCard() *models.CreditCard {
	return models.NewCreditCard(map[string]string{
		"number":      "4111111111111111",
		"expiryMonth": "12",
		"expiryYear":  "2032",
		"cvv":         "123",
		"name":        "Jane Doe",
	})
}

func TestAuthorize_BankAccount(t *testing.T) {
	gateway, form := newRecordingServer(t, http.StatusOK, approvedBody)

	result, err := gateway.Authorize(context.Background(), &ports.AuthorizeRequest{
		Amount:      decimal.NewFromFloat(10.5),
		Currency:    "USD",
		BankAccount: testBankAccount(),
		SECCode:     models.SECCodeWEB,
		OrderID:     "order-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "auth", form.Get("type"))
	assert.Equal(t, "merchant", form.Get("username"))
	assert.Equal(t, "secret", form.Get("password"))
	assert.Equal(t, "10.50", form.Get("amount"))
	assert.Equal(t, "USD", form.Get("currency"))
	assert.Equal(t, "check", form.Get("payment"))
	assert.Equal(t, "Jane Doe", form.Get("checkname"))
	assert.Equal(t, "021000021", form.Get("checkaba"))
	assert.Equal(t, "12345678", form.Get("checkaccount"))
	assert.Equal(t, "checking", form.Get("account_type"))
	assert.Equal(t, "personal", form.Get("account_holder_type"))
	assert.Equal(t, "First National", form.Get("bank_name"))
	assert.Equal(t, "WEB", form.Get("sec_code"))
	assert.Equal(t, "order-1", form.Get("orderid"))

	assert.Equal(t, "2001234567", result.TransactionID)
	assert.Equal(t, models.StatusApproved, result.Status)
	assert.Equal(t, "123456", result.AuthCode)
	assert.Equal(t, "Y", result.AVSResponse)
	assert.Equal(t, "M", result.CVVResponse)
	assert.True(t, result.IsSuccessful())
}

func TestPurchase_Card(t *testing.T) {
	gateway, form := newRecordingServer(t, http.StatusOK, approvedBody)

	card := testCard()
	card.SetAddress1("1 Main St").SetCity("Springfield").SetState("IL").SetPostcode("62701")

	result, err := gateway.Purchase(context.Background(), &ports.PurchaseRequest{
		Amount:   decimal.NewFromInt(25),
		Currency: "USD",
		Card:     card,
	})

	require.NoError(t, err)
	assert.Equal(t, "sale", form.Get("type"))
	assert.Equal(t, "creditcard", form.Get("payment"))
	assert.Equal(t, "4111111111111111", form.Get("ccnumber"))
	assert.Equal(t, "1232", form.Get("ccexp"))
	assert.Equal(t, "123", form.Get("cvv"))
	assert.Equal(t, "Jane", form.Get("firstname"))
	assert.Equal(t, "Doe", form.Get("lastname"))
	assert.Equal(t, "1 Main St", form.Get("address1"))
	assert.Equal(t, "62701", form.Get("zip"))
	assert.Equal(t, "25.00", form.Get("amount"))
	assert.True(t, result.IsSuccessful())
}

func TestPurchase_CustomerVaultReference(t *testing.T) {
	gateway, form := newRecordingServer(t, http.StatusOK, approvedBody)

	_, err := gateway.Purchase(context.Background(), &ports.PurchaseRequest{
		Amount:          decimal.NewFromInt(9),
		CustomerVaultID: "vault-42",
	})

	require.NoError(t, err)
	assert.Equal(t, "vault-42", form.Get("customer_vault_id"))
	assert.Empty(t, form.Get("ccnumber"))
	assert.Empty(t, form.Get("checkaccount"))
}

func TestPurchase_GeneratesOrderID(t *testing.T) {
	gateway, form := newRecordingServer(t, http.StatusOK, "response=1&responsetext=SUCCESS&transactionid=55&response_code=100")

	result, err := gateway.Purchase(context.Background(), &ports.PurchaseRequest{
		Amount:          decimal.NewFromInt(5),
		CustomerVaultID: "vault-42",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, form.Get("orderid"))
	// Reply carried no orderid, so the generated one is echoed back.
	assert.Equal(t, form.Get("orderid"), result.OrderID)
}

func TestPurchase_NoPaymentMethod(t *testing.T) {
	gateway, form := newRecordingServer(t, http.StatusOK, approvedBody)

	_, err := gateway.Purchase(context.Background(), &ports.PurchaseRequest{Amount: decimal.NewFromInt(5)})

	var verr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "payment", verr.Field)
	assert.Empty(t, *form, "invalid request must not reach the gateway")
}

func TestPurchase_InvalidBankAccount(t *testing.T) {
	gateway, form := newRecordingServer(t, http.StatusOK, approvedBody)

	account := testBankAccount().SetAccountType("money-market")

	_, err := gateway.Purchase(context.Background(), &ports.PurchaseRequest{
		Amount:      decimal.NewFromInt(5),
		BankAccount: account,
	})

	var verr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "bankAccountType", verr.Field)
	assert.Empty(t, *form)
}

func TestPurchase_Declined(t *testing.T) {
	gateway, _ := newRecordingServer(t, http.StatusOK, "response=2&responsetext=DECLINE&response_code=200&transactionid=99")

	result, err := gateway.Purchase(context.Background(), &ports.PurchaseRequest{
		Amount: decimal.NewFromInt(5),
		Card:   testCard(),
	})

	assert.Nil(t, result)
	var perr *pkgerrors.PaymentError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "200", perr.Code)
	assert.Equal(t, pkgerrors.CategoryDeclined, perr.Category)
	assert.Equal(t, "DECLINE", perr.GatewayMessage)
	assert.False(t, perr.IsRetriable)
}

func TestPurchase_InsufficientFundsIsRetriable(t *testing.T) {
	gateway, _ := newRecordingServer(t, http.StatusOK, "response=2&responsetext=INSUFF+FUNDS&response_code=202")

	_, err := gateway.Purchase(context.Background(), &ports.PurchaseRequest{
		Amount: decimal.NewFromInt(5),
		Card:   testCard(),
	})

	var perr *pkgerrors.PaymentError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, pkgerrors.CategoryInsufficientFunds, perr.Category)
	assert.True(t, perr.IsRetriable)
}

func TestCapture(t *testing.T) {
	gateway, form := newRecordingServer(t, http.StatusOK, approvedBody)

	result, err := gateway.Capture(context.Background(), &ports.CaptureRequest{
		TransactionID: "2001234567",
		Amount:        decimal.NewFromFloat(10.5),
	})

	require.NoError(t, err)
	assert.Equal(t, "capture", form.Get("type"))
	assert.Equal(t, "2001234567", form.Get("transactionid"))
	assert.Equal(t, "10.50", form.Get("amount"))
	assert.True(t, result.IsSuccessful())
}

func TestCapture_RequiresTransactionID(t *testing.T) {
	gateway, form := newRecordingServer(t, http.StatusOK, approvedBody)

	_, err := gateway.Capture(context.Background(), &ports.CaptureRequest{})

	var verr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "transactionId", verr.Field)
	assert.Empty(t, *form)
}

func TestRefund_OmitsZeroAmount(t *testing.T) {
	gateway, form := newRecordingServer(t, http.StatusOK, approvedBody)

	_, err := gateway.Refund(context.Background(), &ports.RefundRequest{
		TransactionID: "2001234567",
	})

	require.NoError(t, err)
	assert.Equal(t, "refund", form.Get("type"))
	assert.Equal(t, "2001234567", form.Get("transactionid"))
	_, hasAmount := (*form)["amount"]
	assert.False(t, hasAmount, "full refund must not send an amount")
}

func TestRefund_PartialAmount(t *testing.T) {
	gateway, form := newRecordingServer(t, http.StatusOK, approvedBody)

	_, err := gateway.Refund(context.Background(), &ports.RefundRequest{
		TransactionID: "2001234567",
		Amount:        decimal.NewFromFloat(3.25),
	})

	require.NoError(t, err)
	assert.Equal(t, "3.25", form.Get("amount"))
}

func TestVoid(t *testing.T) {
	gateway, form := newRecordingServer(t, http.StatusOK, approvedBody)

	result, err := gateway.Void(context.Background(), "2001234567")

	require.NoError(t, err)
	assert.Equal(t, "void", form.Get("type"))
	assert.Equal(t, "2001234567", form.Get("transactionid"))
	assert.True(t, result.IsSuccessful())

	_, err = gateway.Void(context.Background(), "")
	var verr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCredit(t *testing.T) {
	gateway, form := newRecordingServer(t, http.StatusOK, approvedBody)

	result, err := gateway.Credit(context.Background(), &ports.CreditRequest{
		Amount:      decimal.NewFromInt(15),
		Currency:    "USD",
		BankAccount: testBankAccount(),
	})

	require.NoError(t, err)
	assert.Equal(t, "credit", form.Get("type"))
	assert.Equal(t, "15.00", form.Get("amount"))
	assert.Equal(t, "12345678", form.Get("checkaccount"))
	assert.True(t, result.IsSuccessful())
}

func TestSend_NetworkError(t *testing.T) {
	client := mocks.NewMockHTTPClient(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})
	gateway := NewGateway(&Config{Endpoint: "https://example.invalid", Username: "u", Password: "p"}, client, mocks.NewMockLogger())

	_, err := gateway.Void(context.Background(), "123")

	var perr *pkgerrors.PaymentError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "NETWORK_ERROR", perr.Code)
	assert.Equal(t, pkgerrors.CategoryNetworkError, perr.Category)
	assert.True(t, perr.IsRetriable)
	assert.Len(t, client.Calls, 1)
}

func TestSend_GatewayServerError(t *testing.T) {
	gateway, _ := newRecordingServer(t, http.StatusInternalServerError, "oops")

	_, err := gateway.Void(context.Background(), "123")

	var perr *pkgerrors.PaymentError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "GATEWAY_ERROR", perr.Code)
	assert.True(t, perr.IsRetriable)
}

func TestSend_BadRequest(t *testing.T) {
	gateway, _ := newRecordingServer(t, http.StatusBadRequest, "bad")

	_, err := gateway.Void(context.Background(), "123")

	var perr *pkgerrors.PaymentError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "REQUEST_ERROR", perr.Code)
	assert.False(t, perr.IsRetriable)
}

func TestSend_SetsFormContentType(t *testing.T) {
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		w.Write([]byte(approvedBody))
	}))
	defer server.Close()

	gateway := NewGateway(&Config{Endpoint: server.URL, Username: "u", Password: "p"}, server.Client(), mocks.NewMockLogger())

	_, err := gateway.Void(context.Background(), "123")

	require.NoError(t, err)
	assert.Equal(t, "application/x-www-form-urlencoded", contentType)
}

func TestDefaultConfig(t *testing.T) {
	sandbox := DefaultConfig("sandbox")
	assert.Equal(t, "https://sandbox.total-appsgateway.com/api/transact.php", sandbox.Endpoint)

	prod := DefaultConfig("production")
	assert.Equal(t, "https://secure.total-appsgateway.com/api/transact.php", prod.Endpoint)
	assert.Equal(t, 30*time.Second, prod.Timeout)
}
