// Package storage backs listing images and verification documents with
// an S3-compatible object store.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config captures the settings for the object store connection.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// Client implements object storage on top of a minio connection.
type Client struct {
	mc         *minio.Client
	publicBase string
}

// Connect initialises the minio client. The endpoint is not dialed
// here; connectivity surfaces on the first operation.
func Connect(cfg Config) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage connect: %w", err)
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return &Client{
		mc:         mc,
		publicBase: scheme + "://" + cfg.Endpoint,
	}, nil
}

// EnsureBuckets creates any of the given buckets that do not exist yet.
func (c *Client) EnsureBuckets(ctx context.Context, buckets ...string) error {
	for _, bucket := range buckets {
		exists, err := c.mc.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("bucket check %q: %w", bucket, err)
		}
		if exists {
			continue
		}
		if err := c.mc.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("bucket create %q: %w", bucket, err)
		}
	}
	return nil
}

// Upload stores the object and returns its key.
func (c *Client) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := c.mc.PutObject(ctx, bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", bucket, key, err)
	}
	return key, nil
}

// PublicURL returns the stable, unauthenticated URL of an object in a
// public bucket.
func (c *Client) PublicURL(bucket, key string) string {
	return c.publicBase + "/" + bucket + "/" + key
}

// SignedURL returns a short-lived presigned GET URL for an object in a
// private bucket.
func (c *Client) SignedURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	u, err := c.mc.PresignedGetObject(ctx, bucket, key, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("sign %s/%s: %w", bucket, key, err)
	}
	return u.String(), nil
}

// Remove deletes the object. Removing an absent key is not an error.
func (c *Client) Remove(ctx context.Context, bucket, key string) error {
	return c.mc.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
}
