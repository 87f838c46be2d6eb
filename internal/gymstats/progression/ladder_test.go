package progression_test

import (
	"testing"

	"github.com/2beens/gymenergy/internal/gymstats/progression"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLadder_SortsRungs(t *testing.T) {
	ladder := progression.NewLadder([]progression.Rung{
		{ID: 3, Name: "c", Threshold: 300},
		{ID: 1, Name: "a", Threshold: 100},
		{ID: 2, Name: "b", Threshold: 200},
	})
	rungs := ladder.Rungs()
	require.Len(t, rungs, 3)
	assert.Equal(t, "a", rungs[0].Name)
	assert.Equal(t, "c", rungs[2].Name)
}

func TestNewLadder_DuplicateThresholdPanics(t *testing.T) {
	assert.Panics(t, func() {
		progression.NewLadder([]progression.Rung{
			{ID: 1, Name: "a", Threshold: 100},
			{ID: 2, Name: "b", Threshold: 100},
		})
	})
}

func TestLadder_Empty(t *testing.T) {
	ladder := progression.NewLadder(nil)
	_, ok := ladder.Current(10)
	assert.False(t, ok)
	_, ok = ladder.Next(10)
	assert.False(t, ok)
	assert.Equal(t, 1.0, ladder.Progress(10))
	_, ok = ladder.Crossed(0, 10)
	assert.False(t, ok)
}
