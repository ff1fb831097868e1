package export

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader ships a bundle to remote storage. Production code uses
// S3Sink; tests substitute a fake.
type Uploader interface {
	Upload(ctx context.Context, bundle *Bundle) error
}

// S3Sink uploads bundles to a single S3 bucket under a fixed key
// prefix. Uploading is optional: a run completes successfully whether
// or not a sink is configured.
type S3Sink struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Sink loads AWS credentials and region from the standard
// environment/config chain and returns a sink targeting bucket. prefix
// is prepended to every object key; pass "" for none.
func NewS3Sink(ctx context.Context, bucket, prefix string) (*S3Sink, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: loading AWS config: %w", err)
	}
	return &S3Sink{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// Upload puts the bundle's file at its run-scoped key.
func (s *S3Sink) Upload(ctx context.Context, bundle *Bundle) error {
	f, err := os.Open(bundle.Path)
	if err != nil {
		return fmt.Errorf("export: opening bundle %s: %w", bundle.Path, err)
	}
	defer f.Close()

	key := bundle.RunID + ".tar.snappy"
	if s.prefix != "" {
		key = s.prefix + "/" + key
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return fmt.Errorf("export: uploading %s to s3://%s/%s: %w", bundle.Path, s.bucket, key, err)
	}
	return nil
}
