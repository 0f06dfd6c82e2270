package ports

import (
	"context"
)

// Secret represents a retrieved secret with metadata
type Secret struct {
	Value    string            // The secret value (e.g., gateway password)
	Version  string            // Secret version identifier
	Metadata map[string]string // Additional secret metadata
}

// SecretManager defines the port for retrieving gateway credentials from a
// secret management service. Implementations handle authentication with the
// backend and any caching.
//
// Path format depends on implementation:
//   - AWS: "totalapps/gateway/credentials" or a full ARN
//   - Vault: "secret/data/totalapps/gateway"
//   - Local: an environment variable name
type SecretManager interface {
	// GetSecret retrieves a secret by its path/name
	GetSecret(ctx context.Context, path string) (*Secret, error)
}
