package sts

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"

	"bolextract/internal/domain"
	"bolextract/internal/port"
)

// API is the subset of the STS client used by the verifier.
type API interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type stsVerifier struct {
	client API
}

// NewSTSVerifier creates a CredentialVerifier that calls GetCallerIdentity.
func NewSTSVerifier(awsCfg aws.Config) port.CredentialVerifier {
	return NewWithClient(sts.NewFromConfig(awsCfg))
}

// NewWithClient wraps an existing STS API client.
func NewWithClient(client API) port.CredentialVerifier {
	return &stsVerifier{client: client}
}

// Verify returns the caller identity. Rejections by STS wrap domain.ErrCredentialsInvalid;
// transport failures are returned as-is.
func (v *stsVerifier) Verify(ctx context.Context) (*port.CallerIdentity, error) {
	out, err := v.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("%w: %s: %s", domain.ErrCredentialsInvalid, apiErr.ErrorCode(), apiErr.ErrorMessage())
		}
		return nil, fmt.Errorf("sts get caller identity: %w", err)
	}
	return &port.CallerIdentity{
		Account: aws.ToString(out.Account),
		ARN:     aws.ToString(out.Arn),
		UserID:  aws.ToString(out.UserId),
	}, nil
}
