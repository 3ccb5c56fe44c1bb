package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/shashiranjanraj/homegrown/config"
)

// s3Store uploads to an S3-compatible object store.
// Works with AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2.
type s3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func newS3Store() (*s3Store, error) {
	bucket := config.MediaS3Bucket()
	region := config.MediaS3Region()
	key := config.MediaS3Key()
	secret := config.MediaS3Secret()
	endpoint := config.MediaS3Endpoint() // leave empty for real AWS
	baseURL := strings.TrimRight(config.MediaS3URL(), "/")

	if bucket == "" {
		return nil, fmt.Errorf("s3: S3_BUCKET is not configured")
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(region),
	}

	// Static credentials (required for MinIO / R2 / Spaces)
	if key != "" && secret != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}

	cfg, err := awscfg.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("s3: load config: %w", err)
	}

	clientOpts := []func(*s3.Options){}
	if endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // required for MinIO
		})
	}
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &s3Store{
		client:  s3.NewFromConfig(cfg, clientOpts...),
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

func (s *s3Store) Upload(ctx context.Context, r io.Reader, contentType string) (Asset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Asset{}, fmt.Errorf("s3: read: %w", err)
	}

	key := newKey(contentType)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return Asset{}, fmt.Errorf("s3: put %s: %w", key, err)
	}

	return Asset{URL: s.baseURL + "/" + key, Key: key}, nil
}

func (s *s3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3: delete %s: %w", key, err)
	}
	return nil
}
