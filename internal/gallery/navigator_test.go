package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsEmpty(t *testing.T) {
	for _, length := range []int{0, -1} {
		n, err := New(length)
		assert.ErrorIs(t, err, ErrEmpty)
		assert.Nil(t, n)
	}
}

func TestNew_StartsAtZero(t *testing.T) {
	n, err := New(3)
	require.NoError(t, err)
	assert.Equal(t, 0, n.Index())
	assert.Equal(t, 3, n.Len())
}

func TestAdvance_FullCycleReturnsToStart(t *testing.T) {
	for length := 1; length <= 7; length++ {
		for start := 0; start < length; start++ {
			n, err := At(length, start)
			require.NoError(t, err)
			for i := 0; i < length; i++ {
				n.Advance()
			}
			assert.Equal(t, start, n.Index(), "length=%d start=%d", length, start)
		}
	}
}

func TestRetreat_InvertsAdvance(t *testing.T) {
	for length := 1; length <= 7; length++ {
		for start := 0; start < length; start++ {
			n, err := At(length, start)
			require.NoError(t, err)
			n.Advance()
			n.Retreat()
			assert.Equal(t, start, n.Index(), "length=%d start=%d", length, start)

			n.Retreat()
			n.Advance()
			assert.Equal(t, start, n.Index(), "length=%d start=%d", length, start)
		}
	}
}

func TestWraparound(t *testing.T) {
	t.Run("advance from last", func(t *testing.T) {
		n, err := At(5, 4)
		require.NoError(t, err)
		assert.Equal(t, 0, n.Advance())
	})

	t.Run("retreat from first", func(t *testing.T) {
		n, err := New(5)
		require.NoError(t, err)
		assert.Equal(t, 4, n.Retreat())
	})
}

func TestJumpTo_IgnoresPriorState(t *testing.T) {
	for start := 0; start < 4; start++ {
		for target := 0; target < 4; target++ {
			n, err := At(4, start)
			require.NoError(t, err)
			assert.Equal(t, target, n.JumpTo(target))
			assert.Equal(t, target, n.Index())
		}
	}
}

func TestJumpTo_OutOfRangePanics(t *testing.T) {
	n, err := New(3)
	require.NoError(t, err)
	assert.Panics(t, func() { n.JumpTo(3) })
	assert.Panics(t, func() { n.JumpTo(-1) })
	assert.Equal(t, 0, n.Index())
}

func TestSingleImage(t *testing.T) {
	n, err := New(1)
	require.NoError(t, err)
	assert.False(t, n.HasControls())
	assert.Equal(t, 0, n.Advance())
	assert.Equal(t, 0, n.Retreat())
}

func TestNextPrev_DoNotMove(t *testing.T) {
	n, err := At(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n.Next())
	assert.Equal(t, 0, n.Prev())
	assert.Equal(t, 1, n.Index())
	assert.True(t, n.HasControls())
}

func TestAt_OutOfRange(t *testing.T) {
	_, err := At(4, 4)
	assert.Error(t, err)

	_, err = At(0, 0)
	assert.ErrorIs(t, err, ErrEmpty)
}

// Four screenshots, three steps forward then one more wraps to the first.
func TestTickScenario(t *testing.T) {
	n, err := New(4)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		n.Advance()
	}
	assert.Equal(t, 3, n.Index())
	n.Advance()
	assert.Equal(t, 0, n.Index())
}
