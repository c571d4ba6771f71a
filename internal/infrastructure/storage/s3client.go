// Package storage reads generated reports from S3-compatible object storage.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/saase/requesthub/internal/domain/report"
	"github.com/saase/requesthub/internal/shared/config"
	"github.com/saase/requesthub/internal/shared/logger"
)

const (
	defaultTimeout = 5 * time.Second
	// maxReportBytes caps how much of an object is read.
	maxReportBytes = 4 << 20
)

// S3Client fetches report objects. Failures are *report.FetchError.
type S3Client struct {
	client  *s3.Client
	cfg     config.StorageConfig
	timeout time.Duration
	logger  logger.Interface
}

// NewS3Client uses static keys when both are configured and the default
// credential chain otherwise. Requests are never retried.
func NewS3Client(ctx context.Context, cfg config.StorageConfig, log logger.Interface) (*S3Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	}
	if cfg.HasStaticCredentials() {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	log.Infow("object storage client initialized",
		"region", cfg.Region,
		"endpoint", cfg.Endpoint,
		"static_credentials", cfg.HasStaticCredentials())

	return &S3Client{
		client:  client,
		cfg:     cfg,
		timeout: timeout,
		logger:  log,
	}, nil
}

func (c *S3Client) GetObject(ctx context.Context, loc report.Location) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(loc.Bucket),
		Key:    aws.String(loc.Key),
	})
	if err != nil {
		return nil, classify(loc, err)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(io.LimitReader(out.Body, maxReportBytes))
	if err != nil {
		return nil, report.NewFetchError(report.ReasonNetwork, loc.String(), err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, report.NewFetchError(report.ReasonEmptyBody, loc.String(), nil)
	}

	c.logger.Debugw("report object fetched", "location", loc.String(), "bytes", len(body))
	return body, nil
}

func classify(loc report.Location, err error) error {
	var noKey *types.NoSuchKey
	if errors.As(err, &noKey) {
		return report.NewFetchError(report.ReasonObjectNotFound, loc.String(), err)
	}
	var noBucket *types.NoSuchBucket
	if errors.As(err, &noBucket) {
		return report.NewFetchError(report.ReasonBucketNotFound, loc.String(), err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return report.NewFetchError(report.ReasonObjectNotFound, loc.String(), err)
		case "NoSuchBucket":
			return report.NewFetchError(report.ReasonBucketNotFound, loc.String(), err)
		}
	}

	return report.NewFetchError(report.ReasonNetwork, loc.String(), err)
}

func (c *S3Client) Region() string             { return c.cfg.Region }
func (c *S3Client) Endpoint() string           { return c.cfg.Endpoint }
func (c *S3Client) HasStaticCredentials() bool { return c.cfg.HasStaticCredentials() }
