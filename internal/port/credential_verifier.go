package port

import "context"

// CallerIdentity describes the principal behind the configured credentials.
type CallerIdentity struct {
	Account string
	ARN     string
	UserID  string
}

// CredentialVerifier checks that the configured cloud credentials are usable.
type CredentialVerifier interface {
	Verify(ctx context.Context) (*CallerIdentity, error)
}
