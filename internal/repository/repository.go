package repository

import (
	"bytes"
	"context"
	"encoding/json"
)

// Keys of the per-session local storage layout.
const (
	KeyCartItems = "cartItems"
	KeyOrders    = "orders"
)

// UpdateFunc receives the stored value (nil when absent) and returns the
// value to write back. Returning an error aborts the write.
type UpdateFunc func(current []byte) ([]byte, error)

// KeyValueStore is the local storage port. Values are opaque JSON documents
// addressed by scope (the session) and key.
type KeyValueStore interface {
	// Get returns nil, nil when the key is absent.
	Get(ctx context.Context, scope, key string) ([]byte, error)
	// Update runs fn and stores its result atomically with respect to other
	// updates of the same scope and key.
	Update(ctx context.Context, scope, key string, fn UpdateFunc) error
}

// DecodeList decodes a stored JSON array. An absent or blank value decodes to
// an empty list.
func DecodeList[T any](data []byte) ([]T, error) {
	out := []T{}
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return []T{}, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
