package kv

import "context"

// Store is the durable key-value medium the collections live in. Get returns
// nil bytes and a nil error for a key that has never been written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
