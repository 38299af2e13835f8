package simulation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLayoutRejectsUneven(t *testing.T) {
	_, err := NewLayout(16, 3)
	require.Error(t, err)

	_, err = NewLayout(16, 0)
	require.Error(t, err)
}

func TestPartitionRangesCoverGrid(t *testing.T) {
	layout, err := NewLayout(32, 4)
	require.NoError(t, err)
	require.Equal(t, 8, layout.LocalN)

	next := 0
	for r := 0; r < 4; r++ {
		p := layout.Partition(r)
		require.Equal(t, next, p.Start)
		require.Equal(t, 8, p.LocalN())
		next = p.End
	}
	require.Equal(t, 32, next)
}

func TestPartitionRingNeighbors(t *testing.T) {
	layout, _ := NewLayout(32, 4)

	p0 := layout.Partition(0)
	require.Equal(t, 3, p0.Prev)
	require.Equal(t, 1, p0.Next)
	require.True(t, p0.OwnsTop())
	require.False(t, p0.OwnsBottom(32))

	p3 := layout.Partition(3)
	require.Equal(t, 2, p3.Prev)
	require.Equal(t, 0, p3.Next)
	require.False(t, p3.OwnsTop())
	require.True(t, p3.OwnsBottom(32))
}

func TestSinglePartitionOwnsEverything(t *testing.T) {
	layout, err := NewLayout(16, 1)
	require.NoError(t, err)

	p := layout.Partition(0)
	require.Equal(t, 0, p.Start)
	require.Equal(t, 16, p.End)
	require.Equal(t, 0, p.Prev)
	require.Equal(t, 0, p.Next)
}
