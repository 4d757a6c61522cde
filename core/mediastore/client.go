package mediastore

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectInfo describes an archived media object.
type ObjectInfo struct {
	Key  string
	Size int64
	ETag string
}

// Client defines the read-side interface over the media archive.
type Client interface {
	// BucketExists checks if the archive bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// StatObject returns size and etag for an object, or an error if absent.
	StatObject(ctx context.Context, bucketName, objectName string) (ObjectInfo, error)
}

// ErrObjectMissing is returned by Verify when the archive has no such object.
var ErrObjectMissing = errors.New("mediastore: object missing from archive")

// ErrSizeMismatch is returned by Verify when the archived object size does
// not match the metadata row.
var ErrSizeMismatch = errors.New("mediastore: archived size mismatch")

// NewClient creates a new archive client based on the configuration.
func NewClient(cfg Config) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create archive client: %w", err)
	}

	return &minioClientWrapper{client: minioClient}, nil
}

type minioClientWrapper struct {
	client *minio.Client
}

func (c *minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return c.client.BucketExists(ctx, bucketName)
}

func (c *minioClientWrapper) StatObject(ctx context.Context, bucketName, objectName string) (ObjectInfo, error) {
	info, err := c.client.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{Key: info.Key, Size: info.Size, ETag: info.ETag}, nil
}

// Verify checks that the object exists in the archive and, when wantSize is
// positive, that the archived size matches.
func Verify(ctx context.Context, client Client, bucket, objectName string, wantSize int64) error {
	info, err := client.StatObject(ctx, bucket, objectName)
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return fmt.Errorf("%w: %s", ErrObjectMissing, objectName)
		}
		return fmt.Errorf("stat %s: %w", objectName, err)
	}
	if wantSize > 0 && info.Size != wantSize {
		return fmt.Errorf("%w: %s has %d bytes, metadata says %d", ErrSizeMismatch, objectName, info.Size, wantSize)
	}
	return nil
}
