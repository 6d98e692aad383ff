// Package storage issues upload URLs for profile photos and removes stored objects.
package storage

import (
	"context"
	"time"

	appErrors "github.com/bhajian/gigbusters-profile/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

const defaultUploadTTL = 15 * time.Minute

// Presigner is the subset of *s3.PresignClient used here.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// ObjectDeleter is the subset of *s3.Client used here.
type ObjectDeleter interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// PhotoStore writes photos directly from clients via presigned PUT URLs.
type PhotoStore struct {
	presigner Presigner
	deleter   ObjectDeleter
	bucket    string
	ttl       time.Duration
	logger    *zap.Logger
}

// NewPhotoStore creates a store for bucket. A zero ttl falls back to 15 minutes.
func NewPhotoStore(presigner Presigner, deleter ObjectDeleter, bucket string, ttl time.Duration, logger *zap.Logger) *PhotoStore {
	if ttl <= 0 {
		ttl = defaultUploadTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhotoStore{presigner: presigner, deleter: deleter, bucket: bucket, ttl: ttl, logger: logger}
}

// NewPhotoStoreFromClient wires both halves from one S3 client.
func NewPhotoStoreFromClient(client *s3.Client, bucket string, ttl time.Duration, logger *zap.Logger) *PhotoStore {
	return NewPhotoStore(s3.NewPresignClient(client), client, bucket, ttl, logger)
}

func (s *PhotoStore) Bucket() string { return s.bucket }

// PresignUpload returns a URL the client can PUT the object body to.
func (s *PhotoStore) PresignUpload(ctx context.Context, key, contentType string) (string, time.Duration, error) {
	in := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	req, err := s.presigner.PresignPutObject(ctx, in, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", 0, appErrors.NewInternal("failed to presign photo upload", err)
	}
	return req.URL, s.ttl, nil
}

// Delete removes the object. Deleting a missing key is not an error in S3.
func (s *PhotoStore) Delete(ctx context.Context, key string) error {
	_, err := s.deleter.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Warn("photo object delete failed", zap.String("bucket", s.bucket), zap.String("key", key), zap.Error(err))
		return appErrors.NewInternal("failed to delete photo object", err)
	}
	return nil
}
