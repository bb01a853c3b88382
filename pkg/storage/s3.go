package storage

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const presignExpiry = 15 * time.Minute

// Service hands out pre-signed S3 upload and download URLs for
// prospect and visit attachments.
type Service struct {
	presigner *s3.PresignClient
	bucket    string
}

// Config holds S3 configuration
type Config struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	Bucket             string
}

// NewService creates a new storage service. Returns nil when no
// bucket is configured; callers treat a nil service as uploads
// disabled.
func NewService(cfg Config) (*Service, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	return &Service{
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
	}, nil
}

// PresignUpload returns a pre-signed PUT URL for a new attachment.
// The object key namespaces uploads by owner so listing a prospect's
// files is a prefix scan.
func (s *Service) PresignUpload(ctx context.Context, ownerType string, ownerID uuid.UUID, fileName, contentType string) (string, string, error) {
	key := path.Join(ownerType, ownerID.String(), uuid.NewString()+"-"+fileName)

	req, err := s.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload: %w", err)
	}

	return req.URL, key, nil
}

// PresignDownload returns a pre-signed GET URL for an existing object
func (s *Service) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}

	return req.URL, nil
}

// ExpirySeconds is the presign lifetime reported to clients
func (s *Service) ExpirySeconds() int {
	return int(presignExpiry.Seconds())
}
