package out

import "context"

// KVStore is the on-device key-value capability backing the archive.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// ChangeWatcher calls fn after the backing storage is written from outside
// the process. Watch blocks until ctx is done.
type ChangeWatcher interface {
	Watch(ctx context.Context, fn func()) error
}
