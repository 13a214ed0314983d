package catalog

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Paintersrp/prodsearch/internal/config"
)

// S3Loader reads catalogs stored as objects in S3 or S3-compatible storage.
type S3Loader struct {
	downloader *manager.Downloader
}

// NewS3Loader builds a loader from the S3 settings. Static credentials are
// used when both keys are present, otherwise the default AWS chain applies.
func NewS3Loader(ctx context.Context, cfg config.S3Config) (*S3Loader, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("catalog: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return NewS3LoaderWithClient(client), nil
}

// NewS3LoaderWithClient wraps an existing client.
func NewS3LoaderWithClient(client manager.DownloadAPIClient) *S3Loader {
	return &S3Loader{downloader: manager.NewDownloader(client)}
}

// Load downloads the object named by an s3://bucket/key URI and decodes it.
func (l *S3Loader) Load(ctx context.Context, uri, format, key string) ([]Record, error) {
	bucket, objectKey, err := ParseS3URI(uri)
	if err != nil {
		return nil, err
	}

	resolved, err := FormatFor(objectKey, format)
	if err != nil {
		return nil, err
	}

	buf := manager.NewWriteAtBuffer(nil)
	if _, err := l.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	}); err != nil {
		return nil, fmt.Errorf("catalog: download %s: %w", uri, err)
	}

	return Decode(bytes.NewReader(buf.Bytes()), resolved, key, uri)
}

// ParseS3URI splits s3://bucket/path/to/key.
func ParseS3URI(uri string) (string, string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("catalog: parse %s: %w", uri, err)
	}
	if !strings.EqualFold(u.Scheme, "s3") {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedSource, uri)
	}

	bucket := u.Host
	objectKey := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || objectKey == "" {
		return "", "", fmt.Errorf("catalog: %s: expected s3://bucket/key", uri)
	}
	return bucket, objectKey, nil
}
