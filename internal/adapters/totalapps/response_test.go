package totalapps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/domain/models"
)

func TestParseResponse_Approved(t *testing.T) {
	resp, err := ParseResponse([]byte(approvedBody))

	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, resp.Status())
	assert.True(t, resp.IsSuccessful())
	assert.False(t, resp.IsDeclined())
	assert.Equal(t, "SUCCESS", resp.Message())
	assert.Equal(t, "100", resp.ResponseCode())
	assert.Equal(t, "2001234567", resp.TransactionID())
	assert.Equal(t, "order-1", resp.OrderID())
	assert.Equal(t, "123456", resp.AuthCode())
	assert.Equal(t, "Y", resp.AVSResponse())
	assert.Equal(t, "M", resp.CVVResponse())
}

func TestParseResponse_Declined(t *testing.T) {
	resp, err := ParseResponse([]byte("response=2&responsetext=DECLINE&response_code=200"))

	require.NoError(t, err)
	assert.Equal(t, models.StatusDeclined, resp.Status())
	assert.True(t, resp.IsDeclined())
	assert.False(t, resp.IsSuccessful())
}

func TestParseResponse_Error(t *testing.T) {
	resp, err := ParseResponse([]byte("response=3&responsetext=Invalid+Username&response_code=300"))

	require.NoError(t, err)
	assert.Equal(t, models.StatusError, resp.Status())
	assert.Equal(t, "Invalid Username", resp.Message())
}

func TestParseResponse_TrimsWhitespace(t *testing.T) {
	resp, err := ParseResponse([]byte("response=1&response_code=100\n"))

	require.NoError(t, err)
	assert.Equal(t, "100", resp.ResponseCode())
}

func TestParseResponse_MissingResponseField(t *testing.T) {
	_, err := ParseResponse([]byte("responsetext=hello"))

	assert.Error(t, err)
}

func TestParseResponse_UnparsableBody(t *testing.T) {
	_, err := ParseResponse([]byte("a=%zz"))

	assert.Error(t, err)
}

func TestResponse_CustomerVaultIDAndGet(t *testing.T) {
	resp, err := ParseResponse([]byte("response=1&customer_vault_id=vault-77&custom_field=x"))

	require.NoError(t, err)
	assert.Equal(t, "vault-77", resp.CustomerVaultID())
	assert.Equal(t, "x", resp.Get("custom_field"))
	assert.Empty(t, resp.Get("absent"))
}
