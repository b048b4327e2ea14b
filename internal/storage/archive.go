// Package storage keeps snapshots of generated analysis reports.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/linskybing/survey-platform/internal/config/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// ReportArchive stores a report and returns the object key it was written to.
type ReportArchive interface {
	Store(ctx context.Context, formID string, report any) (string, error)
}

// NopArchive discards reports.
type NopArchive struct{}

func (NopArchive) Store(ctx context.Context, formID string, report any) (string, error) {
	return "", nil
}

type MinioArchive struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// NewMinioArchive connects and creates the bucket when it does not exist.
func NewMinioArchive(ctx context.Context, opts MinioOptions) (*MinioArchive, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logger.Log.Info("Bucket created", zap.String("bucket", opts.Bucket))
	}

	return &MinioArchive{client: client, bucket: opts.Bucket, now: time.Now}, nil
}

func (a *MinioArchive) Store(ctx context.Context, formID string, report any) (string, error) {
	if strings.TrimSpace(formID) == "" {
		return "", fmt.Errorf("form id cannot be empty")
	}

	data, err := json.Marshal(report)
	if err != nil {
		return "", err
	}

	key := ReportKey(formID, a.now())
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

func ReportKey(formID string, at time.Time) string {
	return path.Join("analysis", formID, fmt.Sprintf("%d.json", at.UnixNano()))
}
