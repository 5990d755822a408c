// Package backup exports snapshots of the recipe collection to an
// S3-compatible bucket. The export is a plain JSON document, the same shape
// the sync gateway writes to the remote store.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"recipekeeper/internal/logging"
	"recipekeeper/internal/recipes"
)

// ErrDisabled is returned by Export when no bucket is configured.
var ErrDisabled = errors.New("backup is not configured")

// s3Client is the slice of the S3 API the exporter uses; an interface so
// tests can substitute a fake.
type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config holds S3-compatible storage settings. Endpoint is optional and
// only needed for non-AWS providers. When AccessKey/SecretKey are empty the
// default AWS credential chain is used.
type S3Config struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

// Exporter uploads recipe snapshots.
type Exporter struct {
	cfg    S3Config
	repo   *recipes.Repository
	client s3Client
	log    logging.Logger

	// now stamps object keys; a test seam.
	now func() time.Time
}

// NewExporter builds an Exporter. With an empty bucket the exporter stays
// disabled and Export returns ErrDisabled.
func NewExporter(ctx context.Context, cfg S3Config, repo *recipes.Repository, log logging.Logger) (*Exporter, error) {
	e := &Exporter{cfg: cfg, repo: repo, log: log, now: time.Now}
	if cfg.Bucket == "" {
		return e, nil
	}

	client, err := newS3Client(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build s3 client: %w", err)
	}
	e.client = client
	return e, nil
}

func newS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts := s3.Options{
			Region:       cfg.Region,
			Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
			UsePathStyle: true,
		}
		if cfg.Endpoint != "" {
			opts.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		return s3.New(opts), nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Enabled reports whether a bucket is configured.
func (e *Exporter) Enabled() bool {
	return e.client != nil
}

// Export uploads the current recipe collection under a timestamped key and
// returns the key.
func (e *Exporter) Export(ctx context.Context) (string, error) {
	if !e.Enabled() {
		return "", ErrDisabled
	}

	data, err := json.MarshalIndent(e.repo.All(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode recipes: %w", err)
	}

	key := fmt.Sprintf("recipes/%s.json", e.now().UTC().Format("20060102T150405Z"))
	_, err = e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload backup: %w", err)
	}

	e.log.Info(ctx, "recipes backed up", "bucket", e.cfg.Bucket, "key", key)
	return key, nil
}
