// Package storage defines the object-storage gateway the transfer workflow
// talks to. Clients never upload through this service: the gateway only issues
// scoped upload authorizations and checks that objects arrived. Swap
// implementations by changing the concrete type injected at startup — the
// MinIO implementation works with any S3-compatible provider (MinIO, R2,
// ArvanCloud, AWS S3).
package storage

import (
	"context"
	"time"
)

// Storage is the gateway interface for brokered direct uploads.
type Storage interface {
	// PresignedPut returns a URL granting write access to exactly one key,
	// valid for the given duration.
	PresignedPut(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Exists reports whether an object is present at key. It reads object
	// metadata only, never content.
	Exists(ctx context.Context, key string) (bool, error)
	// PublicURL constructs the browser-accessible URL for a given key.
	PublicURL(key string) string
}
