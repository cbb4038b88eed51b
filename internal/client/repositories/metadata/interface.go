// Package metadata stores small key/value records in the local client
// database. The session credential lives here under a well-known key.
package metadata

import "context"

// Repository is a key/value view over the metadata table.
//
// Get returns (nil, nil) for a missing key; Set upserts; Delete is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
