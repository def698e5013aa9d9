// Package blob is the object store behind image generation. Backends are
// selected from the environment: an S3-compatible endpoint, Azure blob
// storage, or a local directory for development.
package blob

import "context"

// Store persists opaque binary objects and resolves their public URLs.
// Keys are unique per upload, so Put never overwrites an existing object.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	URL(key string) string
}
