package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentError_Error(t *testing.T) {
	err := NewPaymentError("200", "Transaction declined", CategoryDeclined, false)
	assert.Equal(t, "200: Transaction declined", err.Error())

	err.GatewayMessage = "DECLINE"
	assert.Equal(t, "200: Transaction declined (gateway: DECLINE)", err.Error())
}

func TestPaymentError_Retriable(t *testing.T) {
	err := NewPaymentError("NETWORK_ERROR", "Failed to connect to payment gateway", CategoryNetworkError, true)
	assert.True(t, err.IsRetriable)
	assert.Equal(t, CategoryNetworkError, err.Category)
	assert.NotNil(t, err.Details)
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("bankAccountType", "bank account type is not in the supported list")
	assert.Equal(t, "validation error on field 'bankAccountType': bank account type is not in the supported list", err.Error())
}
