// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	store := s3.NewStore(awss3.NewFromConfig(cfg), "my-bucket", "datasets/")
//
//	d, err := dataset.Load(ctx, store, "sets.csv.zst")
//
// # Features
//
//   - Multipart uploads for large datasets
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
