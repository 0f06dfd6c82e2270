package totalapps

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/domain/models"
)

// Response wraps the raw query-string reply from the transaction API and
// exposes normalized accessors over it. The processor answers every request
// with a flat key-value body:
//
//	response=1&responsetext=SUCCESS&authcode=123456&transactionid=...&response_code=100
//
// response is 1 for approved, 2 for declined, 3 for error.
type Response struct {
	values url.Values
}

// ParseResponse parses a raw reply body into a Response
func ParseResponse(body []byte) (*Response, error) {
	values, err := url.ParseQuery(strings.TrimSpace(string(body)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}
	if values.Get("response") == "" {
		return nil, fmt.Errorf("response field is missing from gateway reply")
	}
	return &Response{values: values}, nil
}

// Status returns the normalized transaction status
func (r *Response) Status() models.TransactionStatus {
	switch r.values.Get("response") {
	case "1":
		return models.StatusApproved
	case "2":
		return models.StatusDeclined
	default:
		return models.StatusError
	}
}

// IsSuccessful reports whether the gateway approved the request
func (r *Response) IsSuccessful() bool {
	return r.Status() == models.StatusApproved
}

// IsDeclined reports whether the gateway declined the request
func (r *Response) IsDeclined() bool {
	return r.Status() == models.StatusDeclined
}

// Message returns the human-readable gateway response text
func (r *Response) Message() string {
	return r.values.Get("responsetext")
}

// ResponseCode returns the three-digit processor result code
func (r *Response) ResponseCode() string {
	return r.values.Get("response_code")
}

// TransactionID returns the processor transaction reference
func (r *Response) TransactionID() string {
	return r.values.Get("transactionid")
}

// OrderID echoes the caller-supplied order identifier
func (r *Response) OrderID() string {
	return r.values.Get("orderid")
}

// AuthCode returns the issuer authorization code
func (r *Response) AuthCode() string {
	return r.values.Get("authcode")
}

// AVSResponse returns the address verification result
func (r *Response) AVSResponse() string {
	return r.values.Get("avsresponse")
}

// CVVResponse returns the card security code verification result
func (r *Response) CVVResponse() string {
	return r.values.Get("cvvresponse")
}

// CustomerVaultID returns the vault reference created or affected by a
// customer vault request
func (r *Response) CustomerVaultID() string {
	return r.values.Get("customer_vault_id")
}

// Get returns a raw reply field by wire name
func (r *Response) Get(key string) string {
	return r.values.Get(key)
}
