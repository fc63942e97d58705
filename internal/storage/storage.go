// Package storage provides the durable key-value layer behind the cart
// and session stores. Values are small JSON blobs; readers treat a
// missing key as empty state.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value
var ErrNotFound = errors.New("storage: key not found")

// KV is the persistence adapter injected into the stores
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
