// Package metadata provides the client-local key-value store that backs
// session persistence. It is the only durable state the CLI keeps.
package metadata

import "context"

// Repository is an opaque key-value persistence primitive.
//
// Get returns (nil, nil) for an absent key; callers treat a missing key as
// "no value" rather than an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
