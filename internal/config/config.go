package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	AWS      AWSConfig
	Upload   UploadConfig
	S3Source S3SourceConfig
	Log      LogConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
	StaticDir    string        `mapstructure:"static_dir"`
}

// AWSConfig holds credentials and client settings shared by the Textract, STS and S3 clients.
type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKey        string `mapstructure:"access_key"`
	SecretKey        string `mapstructure:"secret_key"`
	TextractEndpoint string `mapstructure:"textract_endpoint"`
	S3Endpoint       string `mapstructure:"s3_endpoint"`
	TimeoutSecs      int    `mapstructure:"timeout_secs"`
	MaxRetries       int    `mapstructure:"max_retries"`
}

// Timeout returns the per-call deadline for AWS requests.
func (a *AWSConfig) Timeout() time.Duration {
	if a.TimeoutSecs <= 0 {
		return 60 * time.Second
	}
	return time.Duration(a.TimeoutSecs) * time.Second
}

// UploadConfig holds document upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// S3SourceConfig controls extraction of documents already stored in S3.
type S3SourceConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	AllowedBuckets []string `mapstructure:"allowed_buckets"`
}

// BucketAllowed reports whether bucket may be read. An empty allow list permits any bucket.
func (s *S3SourceConfig) BucketAllowed(bucket string) bool {
	if len(s.AllowedBuckets) == 0 {
		return true
	}
	for _, b := range s.AllowedBuckets {
		if b == bucket {
			return true
		}
	}
	return false
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Flags returns standard logger flags. "plain" drops timestamps for hosts that stamp
// each line themselves, "utc" keeps them in UTC, and anything else ("console") uses
// local time. Debug level adds microseconds and the caller's file:line.
func (l *LogConfig) Flags() int {
	var flags int
	switch strings.ToLower(l.Format) {
	case "plain":
		flags = 0
	case "utc":
		flags = log.LstdFlags | log.LUTC
	default:
		flags = log.LstdFlags
	}
	if strings.EqualFold(l.Level, "debug") {
		if flags != 0 {
			flags |= log.Lmicroseconds
		}
		flags |= log.Lshortfile
	}
	return flags
}

// Load reads configuration from environment variables with the BOLEXTRACT_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BOLEXTRACT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "120s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.static_dir", "textract-spark/dist")

	// AWS defaults
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key", "")
	v.SetDefault("aws.secret_key", "")
	v.SetDefault("aws.textract_endpoint", "")
	v.SetDefault("aws.s3_endpoint", "")
	v.SetDefault("aws.timeout_secs", 60)
	v.SetDefault("aws.max_retries", 3)

	// Synchronous AnalyzeDocument accepts at most 10MB of raw bytes.
	v.SetDefault("upload.max_file_size_mb", 10)

	v.SetDefault("s3_source.enabled", false)
	v.SetDefault("s3_source.allowed_buckets", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:8080,http://127.0.0.1:8080,http://localhost:8000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "BOLEXTRACT_SERVER_PORT",
		"server.read_timeout":       "BOLEXTRACT_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "BOLEXTRACT_SERVER_WRITE_TIMEOUT",
		"server.environment":        "BOLEXTRACT_SERVER_ENVIRONMENT",
		"server.static_dir":         "BOLEXTRACT_SERVER_STATIC_DIR",
		"aws.region":                "BOLEXTRACT_AWS_REGION",
		"aws.access_key":            "BOLEXTRACT_AWS_ACCESS_KEY",
		"aws.secret_key":            "BOLEXTRACT_AWS_SECRET_KEY",
		"aws.textract_endpoint":     "BOLEXTRACT_AWS_TEXTRACT_ENDPOINT",
		"aws.s3_endpoint":           "BOLEXTRACT_AWS_S3_ENDPOINT",
		"aws.timeout_secs":          "BOLEXTRACT_AWS_TIMEOUT_SECS",
		"aws.max_retries":           "BOLEXTRACT_AWS_MAX_RETRIES",
		"upload.max_file_size_mb":   "BOLEXTRACT_UPLOAD_MAX_FILE_SIZE_MB",
		"s3_source.enabled":         "BOLEXTRACT_S3_SOURCE_ENABLED",
		"s3_source.allowed_buckets": "BOLEXTRACT_S3_SOURCE_ALLOWED_BUCKETS",
		"log.level":                 "BOLEXTRACT_LOG_LEVEL",
		"log.format":                "BOLEXTRACT_LOG_FORMAT",
		"cors.allowed_origins":      "BOLEXTRACT_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BOLEXTRACT_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BOLEXTRACT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
		StaticDir:    v.GetString("server.static_dir"),
	}

	// The standard AWS variables are honoured when the prefixed ones are unset.
	cfg.AWS = AWSConfig{
		Region:           firstNonEmpty(os.Getenv("BOLEXTRACT_AWS_REGION"), os.Getenv("AWS_REGION"), v.GetString("aws.region")),
		AccessKey:        firstNonEmpty(v.GetString("aws.access_key"), os.Getenv("AWS_ACCESS_KEY_ID")),
		SecretKey:        firstNonEmpty(v.GetString("aws.secret_key"), os.Getenv("AWS_SECRET_ACCESS_KEY")),
		TextractEndpoint: v.GetString("aws.textract_endpoint"),
		S3Endpoint:       v.GetString("aws.s3_endpoint"),
		TimeoutSecs:      v.GetInt("aws.timeout_secs"),
		MaxRetries:       v.GetInt("aws.max_retries"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.S3Source = S3SourceConfig{
		Enabled:        v.GetBool("s3_source.enabled"),
		AllowedBuckets: splitList(v.GetString("s3_source.allowed_buckets")),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}

	return cfg, nil
}

// splitList parses a comma-separated string, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
