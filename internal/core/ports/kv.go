package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KV.Get when the key has never been written
// or has been deleted.
var ErrKeyNotFound = errors.New("kv: key not found")

// KV is the durable key-value store holding the operator's session and UI
// preferences. Written only by the session service; read at startup.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}
