package secrets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/domain/ports"
)

func TestEnvSecretManager(t *testing.T) {
	t.Setenv("TEST_GATEWAY_PASSWORD", "hunter2")

	manager := NewEnvSecretManager(zap.NewNop())

	secret, err := manager.GetSecret(context.Background(), "TEST_GATEWAY_PASSWORD")

	require.NoError(t, err)
	assert.Equal(t, "hunter2", secret.Value)
	assert.Equal(t, "env", secret.Version)
}

func TestEnvSecretManager_Missing(t *testing.T) {
	manager := NewEnvSecretManager(zap.NewNop())

	_, err := manager.GetSecret(context.Background(), "DOES_NOT_EXIST_EVER")

	assert.ErrorContains(t, err, "secret not found")
}

func TestSecretCache(t *testing.T) {
	cache := newSecretCache(true, time.Minute)
	secret := &ports.Secret{Value: "hunter2"}

	assert.Nil(t, cache.get("path"))

	cache.put("path", secret)
	assert.Equal(t, secret, cache.get("path"))
}

func TestSecretCache_Expiry(t *testing.T) {
	cache := newSecretCache(true, -time.Second)

	cache.put("path", &ports.Secret{Value: "stale"})

	assert.Nil(t, cache.get("path"))
}

func TestSecretCache_Disabled(t *testing.T) {
	cache := newSecretCache(false, time.Minute)

	cache.put("path", &ports.Secret{Value: "hunter2"})

	assert.Nil(t, cache.get("path"))
}
