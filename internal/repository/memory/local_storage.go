package memory

import (
	"context"
	"sync"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/repository"
)

type entryKey struct {
	scope string
	key   string
}

// LocalStorage is an in-process KeyValueStore. State is lost on restart.
type LocalStorage struct {
	mu     sync.Mutex
	values map[entryKey][]byte
}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{values: make(map[entryKey][]byte)}
}

func (s *LocalStorage) Get(ctx context.Context, scope, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.values[entryKey{scope, key}]), nil
}

func (s *LocalStorage) Update(ctx context.Context, scope, key string, fn repository.UpdateFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	k := entryKey{scope, key}
	next, err := fn(clone(s.values[k]))
	if err != nil {
		return err
	}
	s.values[k] = clone(next)
	return nil
}

// Set overwrites a value directly, bypassing any decoding.
func (s *LocalStorage) Set(scope, key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[entryKey{scope, key}] = clone(value)
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
