package cmap

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpsert(t *testing.T) {
	a := require.New(t)
	m := New[string, int]()

	err := m.Upsert("a", func(v int, ok bool) (int, error) {
		a.False(ok)
		a.Zero(v)
		return 1, nil
	})
	a.NoError(err)

	errNope := errors.New("nope")
	err = m.Upsert("a", func(v int, ok bool) (int, error) {
		a.True(ok)
		a.Equal(1, v)
		return 0, errNope
	})
	a.ErrorIs(err, errNope)

	v, ok := m.Get("a")
	a.True(ok)
	a.Equal(1, v)

	m.Remove("a")
	_, ok = m.Get("a")
	a.False(ok)
	a.Zero(m.Len())
}

func TestUpsert_Concurrent(t *testing.T) {
	m := New[string, int]()
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Upsert("n", func(v int, _ bool) (int, error) {
				return v + 1, nil
			})
		}()
	}
	wg.Wait()

	v, ok := m.Get("n")
	require.True(t, ok)
	require.Equal(t, 50, v)
}
