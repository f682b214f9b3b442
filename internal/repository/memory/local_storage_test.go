package memory

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingKey(t *testing.T) {
	s := NewLocalStorage()

	v, err := s.Get(context.Background(), "session", "cartItems")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestUpdateIsScoped(t *testing.T) {
	s := NewLocalStorage()
	ctx := context.Background()

	require.NoError(t, s.Update(ctx, "a", "orders", func([]byte) ([]byte, error) {
		return []byte(`[1]`), nil
	}))

	v, err := s.Get(ctx, "a", "orders")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(v))

	v, err = s.Get(ctx, "b", "orders")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestUpdateErrorKeepsValue(t *testing.T) {
	s := NewLocalStorage()
	ctx := context.Background()
	s.Set("a", "k", []byte("old"))

	boom := errors.New("boom")
	err := s.Update(ctx, "a", "k", func([]byte) ([]byte, error) {
		return []byte("new"), boom
	})
	assert.ErrorIs(t, err, boom)

	v, _ := s.Get(ctx, "a", "k")
	assert.Equal(t, "old", string(v))
}

func TestUpdateIsAtomic(t *testing.T) {
	s := NewLocalStorage()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(ctx, "a", "n", func(cur []byte) ([]byte, error) {
				n, _ := strconv.Atoi(string(cur))
				return []byte(strconv.Itoa(n + 1)), nil
			})
		}()
	}
	wg.Wait()

	v, _ := s.Get(ctx, "a", "n")
	assert.Equal(t, "50", string(v))
}

func TestCancelledContext(t *testing.T) {
	s := NewLocalStorage()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx, "a", "k")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Update(ctx, "a", "k", nil), context.Canceled)
}
