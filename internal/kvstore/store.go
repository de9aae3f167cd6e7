// Package kvstore provides the flat key-value persistence primitive behind
// the catalog. The store knows nothing about entity semantics: values are
// opaque byte slices and the only query capability is a prefix scan.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists under the key.
var ErrNotFound = errors.New("key not found")

// Entry is one key-value pair returned by a prefix scan.
type Entry struct {
	Key   string
	Value []byte
}

// Store is the persistence contract. Implementations must provide atomic
// single-key reads and writes; multi-key transactions are not part of the
// contract and callers must not assume them.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// GetByPrefix returns every entry whose key starts with prefix, ordered
	// by key ascending.
	GetByPrefix(ctx context.Context, prefix string) ([]Entry, error)
}
