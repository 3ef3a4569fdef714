// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the pipeline consumes: listing bucket contents, downloading
// sources and uploading generated derivatives. The abstraction supports
// both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making
// it easier to mock storage interactions for unit testing (see
// core/storage/mocks).
//
// # Operations
//
//   - GetObject: retrieves content as a stream.
//   - PutObject: uploads content (with size and options).
//   - ListObjects: lists objects in a bucket (supports prefix/recursive).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	objects := client.ListObjects(ctx, "galleries", opts)
package storage
