// Command verifyaws checks that the configured AWS credentials can reach STS and Textract.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/smithy-go"

	"bolextract/internal/analyzer"
	"bolextract/internal/analyzer/textract"
	"bolextract/internal/awsclient"
	"bolextract/internal/config"
	"bolextract/internal/domain"
	stsidentity "bolextract/internal/identity/sts"
	"bolextract/internal/port"
)

// probePayload is not a valid document. Any Textract API error means the request was authenticated.
var probePayload = []byte("dummy")

func main() {
	if err := run(); err != nil {
		log.Printf("verifyaws: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awsCfg, err := awsclient.Load(ctx, &cfg.AWS)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}
	fmt.Printf("Region: %s\n", awsCfg.Region)

	id, err := stsidentity.NewSTSVerifier(awsCfg).Verify(ctx)
	if err != nil {
		return fmt.Errorf("credential check failed: %w", err)
	}
	fmt.Printf("Account: %s\n", id.Account)
	fmt.Printf("ARN:     %s\n", id.ARN)

	_, err = textract.NewTextractAnalyzer(awsCfg, &cfg.AWS).Analyze(ctx, port.AnalyzeInput{
		Bytes:       probePayload,
		ContentType: domain.AllowedFileTypes[domain.FileTypePDF],
	})
	fmt.Printf("Textract: %s\n", describeProbe(err))
	return nil
}

// describeProbe summarizes the Textract probe outcome.
func describeProbe(err error) string {
	if err == nil {
		return "accepted probe payload"
	}
	var providerErr *analyzer.ProviderError
	if errors.As(err, &providerErr) {
		return fmt.Sprintf("reachable (%s: %s)", providerErr.Code, providerErr.Message)
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("reachable (%s)", apiErr.ErrorCode())
	}
	if errors.Is(err, domain.ErrAnalysisThrottled) {
		return "reachable (throttled)"
	}
	return fmt.Sprintf("unreachable: %v", err)
}
