// Package kv abstracts the key-value backend holding the root document,
// import backups, diagnostics snapshots and the admin session flag.
package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kv: key not found")

// Store is the minimal key-value surface the services use. Both the
// redis-backed and the file-backed implementations satisfy it.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}
