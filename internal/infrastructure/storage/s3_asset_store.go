package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"coursedesk/internal/usecase/interfaces"
)

var (
	ErrMissingAssetBucket    = errors.New("missing ASSET_BUCKET")
	ErrAssetURLOutsideBucket = errors.New("asset url does not belong to the asset bucket")
)

// ConnectS3 creates an S3 client using environment variables.
//
// Supported env vars (local-friendly):
//   - AWS_REGION (default: us-east-1)
//   - AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default: local)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000, forces path-style)
func ConnectS3() *s3.Client {
	region := getenvDefault("AWS_REGION", "us-east-1")
	endpoint := os.Getenv("S3_ENDPOINT")

	creds := credentials.NewStaticCredentialsProvider(
		getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		"",
	)

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		log.Fatalf("failed to create s3 config: %v", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
}

// S3AssetStore issues pre-signed PUT URLs for course assets and deletes
// objects by their public URL.

type S3AssetStore struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	baseURL string
}

var _ interfaces.IAssetStore = (*S3AssetStore)(nil)

func NewS3AssetStore(client *s3.Client, bucket string) (*S3AssetStore, error) {
	if bucket == "" {
		log.Printf("[asset][s3] missing ASSET_BUCKET")
		return nil, ErrMissingAssetBucket
	}
	baseURL := strings.TrimSuffix(
		getenvDefault("ASSET_PUBLIC_BASE_URL", fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)),
		"/",
	)
	return &S3AssetStore{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

func (s *S3AssetStore) PresignUpload(ctx context.Context, key string, contentType string, expires time.Duration) (interfaces.UploadTarget, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		log.Printf("[asset][s3] presign failed key=%s err=%v", key, err)
		return interfaces.UploadTarget{}, err
	}

	return interfaces.UploadTarget{
		Key:       key,
		UploadURL: req.URL,
		PublicURL: s.baseURL + "/" + key,
		ExpiresAt: time.Now().UTC().Add(expires),
	}, nil
}

func (s *S3AssetStore) DeleteByURL(ctx context.Context, rawURL string) error {
	key, err := s.keyFromURL(rawURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Printf("[asset][s3] delete failed key=%s err=%v", key, err)
		return err
	}
	log.Printf("[asset][s3] delete success key=%s", key)
	return nil
}

// keyFromURL resolves the object key from a public asset URL. Both
// virtual-hosted and path-style URLs are accepted, but the URL must point
// into the configured bucket.
func (s *S3AssetStore) keyFromURL(rawURL string) (string, error) {
	if strings.HasPrefix(rawURL, s.baseURL+"/") {
		return strings.TrimPrefix(rawURL, s.baseURL+"/"), nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ErrAssetURLOutsideBucket
	}
	path := strings.TrimPrefix(u.Path, "/")
	if strings.HasPrefix(u.Host, s.bucket+".") && path != "" {
		return path, nil
	}
	if strings.HasPrefix(path, s.bucket+"/") {
		key := strings.TrimPrefix(path, s.bucket+"/")
		if key != "" {
			return key, nil
		}
	}
	return "", ErrAssetURLOutsideBucket
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
