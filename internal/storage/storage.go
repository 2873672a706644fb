// Package storage wraps an S3-compatible object store (Cloudflare R2 in
// production) used for submission images.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mascotassj/backend/internal/config"
)

// MaxImageSize is the per-image upload limit.
const MaxImageSize = 10 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/heic": true,
}

// Store is the object-store surface submission services depend on.
type Store interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}

// File carries one uploaded image from the HTTP layer to a submission
// service.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Client talks to the configured bucket.
type Client struct {
	s3c       *s3.Client
	bucket    string
	publicURL string
}

func NewClient(cfg *config.Config) *Client {
	s3c := s3.New(s3.Options{
		BaseEndpoint: aws.String(cfg.StorageEndpoint),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			"",
		),
		Region: cfg.StorageRegion,
	})

	return &Client{
		s3c:       s3c,
		bucket:    cfg.StorageBucket,
		publicURL: strings.TrimSuffix(cfg.StoragePublicURL, "/"),
	}
}

// Upload stores the object at key and returns its durable public URL.
func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := c.s3c.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", key, err)
	}
	return c.publicURL + "/" + key, nil
}

// Delete removes the object at key. Used as compensating cleanup when a
// record insert fails after its image was already uploaded.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3c.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

// ValidImageType reports whether contentType is an accepted image type.
func ValidImageType(contentType string) bool {
	return allowedImageTypes[strings.ToLower(contentType)]
}

// ImageExt returns the lowercased extension of filename, defaulting to ".jpg"
// when the name carries none.
func ImageExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return ".jpg"
	}
	return ext
}
