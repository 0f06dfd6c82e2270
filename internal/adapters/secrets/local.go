package secrets

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Awolacademy/omnipay-total-apps-gateway/internal/domain/ports"
)

// envSecretManager implements the SecretManager port over environment
// variables. Development only; use AWS or Vault in production.
type envSecretManager struct {
	logger *zap.Logger
}

// NewEnvSecretManager creates a secret manager that resolves paths as
// environment variable names
func NewEnvSecretManager(logger *zap.Logger) ports.SecretManager {
	return &envSecretManager{logger: logger}
}

// GetSecret reads the environment variable named by path
func (m *envSecretManager) GetSecret(ctx context.Context, path string) (*ports.Secret, error) {
	value := os.Getenv(path)
	if value == "" {
		return nil, fmt.Errorf("secret not found: %s", path)
	}

	m.logger.Debug("secret read from environment", zap.String("path", path))

	return &ports.Secret{
		Value:   value,
		Version: "env",
	}, nil
}
