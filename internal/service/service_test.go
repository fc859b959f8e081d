package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLookup(t *testing.T) {
	s := NewStore[string, int]()

	_, err := s.Get("missing")
	require.ErrorIs(t, err, ErrNotFound)

	s.Put("k", 7)
	v, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	s.Put("k", 9)
	v, err = s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, 9, v, "lookup returns the most recent entity")
}

func TestDispatchRegistrationOrder(t *testing.T) {
	s := NewStore[string, string]()

	var seen []string
	for _, name := range []string{"a", "b", "c"} {
		name := name
		s.AddListener(ListenerFunc[string](func(v string) error {
			seen = append(seen, name+":"+v)
			return nil
		}))
	}

	require.NoError(t, s.Dispatch("x"))
	assert.Equal(t, []string{"a:x", "b:x", "c:x"}, seen)
	assert.Len(t, s.Listeners(), 3)
}

func TestDispatchPartialFailure(t *testing.T) {
	s := NewStore[string, int]()

	boom := errors.New("boom")
	var after int
	s.AddListener(ListenerFunc[int](func(int) error { return boom }))
	s.AddListener(ListenerFunc[int](func(int) error {
		after++
		return nil
	}))

	err := s.Dispatch(1)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, after, "a failing listener must not stop the rest")
}
