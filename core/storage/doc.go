// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so registry exports (device and location CSV files)
// can be read from AWS S3 or a self-hosted MinIO instance. Only the read operations
// the tool needs are exposed.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the source bucket.
//   - OpenObject: Retrieves an export as a stream. Missing buckets and objects map
//     to ErrBucketNotFound and ErrObjectNotFound.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	rc, err := client.OpenObject(ctx, "cmdb-exports", "devices.csv")
//	if errors.Is(err, storage.ErrObjectNotFound) {
//	    // no export yet
//	}
package storage
