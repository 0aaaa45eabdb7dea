package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	_ "bolextract/docs"
	"bolextract/internal/analyzer/textract"
	"bolextract/internal/awsclient"
	"bolextract/internal/config"
	"bolextract/internal/handler"
	stsidentity "bolextract/internal/identity/sts"
	"bolextract/internal/port"
	"bolextract/internal/router"
	"bolextract/internal/service"
	s3storage "bolextract/internal/storage/s3"
)

// @title Bill of Lading Extraction API
// @version 1.0
// @description Extracts shipping fields from bill-of-lading documents using AWS Textract.
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.SetFlags(cfg.Log.Flags())

	awsCfg, err := awsclient.Load(context.Background(), &cfg.AWS)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}

	// Initialize AWS-backed adapters
	analyzer := textract.NewTextractAnalyzer(awsCfg, &cfg.AWS)
	verifier := stsidentity.NewSTSVerifier(awsCfg)
	var source port.ObjectSource
	if cfg.S3Source.Enabled {
		source = s3storage.NewS3Source(awsCfg, &cfg.AWS)
		log.Printf("S3 source enabled (allowed buckets: %v)", cfg.S3Source.AllowedBuckets)
	}

	// Initialize services
	extractionSvc := service.NewExtractionService(analyzer, source, &cfg.Upload, &cfg.S3Source)

	// Initialize handlers
	extractionH := handler.NewExtractionHandler(extractionSvc)
	healthH := handler.NewHealthHandler(verifier)
	spaH := handler.NewSPAHandler(cfg.Server.StaticDir)
	if !spaH.Built() {
		log.Printf("Frontend build not found at %s; serving API only", cfg.Server.StaticDir)
	}

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, extractionH, healthH, spaH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s (region %s, environment %s)", cfg.Server.Port, cfg.AWS.Region, cfg.Server.Environment)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
