package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"kobis-search/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// importPrefix namespaces uploaded catalog workbooks inside the bucket.
const importPrefix = "imports/"

var ErrUnsupportedWorkbook = errors.New("only .xlsx workbooks can be uploaded")

// MinIOService stores catalog workbooks for the loader.
type MinIOService struct {
	client *minio.Client
	bucket string
	expiry time.Duration
	logger *logrus.Logger
}

// PresignedUpload is returned to clients that upload a workbook directly to
// object storage.
type PresignedUpload struct {
	UploadURL string    `json:"upload_url"`
	ObjectKey string    `json:"object_key" example:"imports/movies_1a2b3c4d.xlsx"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client: minioClient,
		bucket: cfg.BucketName,
		expiry: cfg.UploadExpiry,
		logger: logger,
	}

	if err := service.ensureBucket(context.Background(), cfg.Region); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	return nil
}

// GeneratePresignedURL returns a PUT URL for a new object derived from
// filename. The object key gets a random suffix so uploads never collide.
func (s *MinIOService) GeneratePresignedURL(ctx context.Context, filename string) (*PresignedUpload, error) {
	objectKey, err := workbookKey(filename, uuid.NewString())
	if err != nil {
		return nil, err
	}

	presignedURL, err := s.client.PresignedPutObject(ctx, s.bucket, objectKey, s.expiry)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename":  filename,
		"objectKey": objectKey,
		"expiry":    s.expiry,
	}).Info("Generated presigned URL")

	return &PresignedUpload{
		UploadURL: presignedURL.String(),
		ObjectKey: objectKey,
		ExpiresAt: time.Now().Add(s.expiry).UTC(),
	}, nil
}

// OpenWorkbook streams a stored workbook. The caller closes the reader.
func (s *MinIOService) OpenWorkbook(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", objectKey, err)
	}

	// GetObject is lazy; Stat surfaces a missing key before reading starts.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, fmt.Errorf("failed to open %s: %w", objectKey, err)
	}

	return obj, nil
}

func (s *MinIOService) DeleteFile(ctx context.Context, objectKey string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		s.logger.WithError(err).WithField("objectKey", objectKey).Error("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}

	s.logger.WithField("objectKey", objectKey).Info("File deleted successfully from MinIO")
	return nil
}

// workbookKey builds the object key for an uploaded workbook.
func workbookKey(filename, suffix string) (string, error) {
	base := filepath.Base(strings.TrimSpace(filename))
	ext := strings.ToLower(filepath.Ext(base))
	if ext != ".xlsx" {
		return "", ErrUnsupportedWorkbook
	}

	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ' ' {
			return '_'
		}
		return r
	}, name)
	if name == "" {
		name = "catalog"
	}

	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return fmt.Sprintf("%s%s_%s%s", importPrefix, name, suffix, ext), nil
}
