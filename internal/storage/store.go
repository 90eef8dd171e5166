// Package storage provides the local key-value stores that hold the
// selection draft and submission snapshots.
package storage

import "errors"

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// Store is a local key-value store.
//
// Deleting a key that does not exist is not an error.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
