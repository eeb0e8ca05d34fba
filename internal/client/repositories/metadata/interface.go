// Package metadata stores small key/value records for the client. The
// session layer keeps its token and identity here.
package metadata

import (
	"context"
)

// Repository is a byte-valued key/value store.
//
// Get returns (nil, nil) for an absent key. SetMany and DeleteMany are
// atomic: either every key is written (or removed) or none is.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, kv map[string][]byte) error
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
	Close() error
}
