package obs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/service"
)

func TestCountedWrapsListener(t *testing.T) {
	m := NewMetrics()
	fail := errors.New("boom")
	calls := 0
	l := Counted[int](m, StageTrades, service.ListenerFunc[int](func(v int) error {
		calls++
		if v < 0 {
			return fail
		}
		return nil
	}))

	require.NoError(t, l.OnAdd(1))
	require.ErrorIs(t, l.OnAdd(-1), fail)

	assert.Equal(t, 2, calls)
	assert.Equal(t, uint64(2), m.Events(StageTrades))

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.Events["trades"])
	assert.Equal(t, uint64(1), snap.ListenerErrors)
	assert.Equal(t, uint64(0), snap.Events["inquiries"])
}
