// Package storage resolves store URIs to blobstore implementations.
package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/setcover/blobstore"
	minioblob "github.com/hupe1980/setcover/blobstore/minio"
	s3blob "github.com/hupe1980/setcover/blobstore/s3"
)

// Credentials holds static credentials for stores that need them.
type Credentials struct {
	AccessKey string
	SecretKey string
}

// Open resolves uri to a blob store. Supported forms:
//
//	dir                               local directory
//	file://dir                        local directory
//	s3://bucket/prefix                Amazon S3, default AWS credential chain
//	minio://endpoint/bucket/prefix    MinIO; add ?secure=true for TLS
func Open(ctx context.Context, uri string, creds Credentials) (blobstore.Store, error) {
	if !strings.Contains(uri, "://") {
		return blobstore.NewLocalStore(uri), nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("storage: parse %q: %w", uri, err)
	}

	switch u.Scheme {
	case "file":
		return blobstore.NewLocalStore(strings.TrimPrefix(uri, "file://")), nil
	case "s3":
		if u.Host == "" {
			return nil, fmt.Errorf("storage: missing bucket in %q", uri)
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("storage: load aws config: %w", err)
		}
		return s3blob.NewStore(awss3.NewFromConfig(cfg), u.Host, strings.TrimPrefix(u.Path, "/")), nil
	case "minio":
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if u.Host == "" || bucket == "" {
			return nil, fmt.Errorf("storage: want minio://endpoint/bucket[/prefix], got %q", uri)
		}
		client, err := minio.New(u.Host, &minio.Options{
			Creds:  credentials.NewStaticV4(creds.AccessKey, creds.SecretKey, ""),
			Secure: u.Query().Get("secure") == "true",
		})
		if err != nil {
			return nil, fmt.Errorf("storage: minio client: %w", err)
		}
		return minioblob.NewStore(client, bucket, prefix), nil
	default:
		return nil, fmt.Errorf("storage: unsupported scheme %q", u.Scheme)
	}
}
