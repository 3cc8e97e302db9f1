package curve

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertKeepsStrictOrder(t *testing.T) {
	c := New()
	rng := rand.New(rand.NewSource(7))
	times := rng.Perm(50)
	for _, ti := range times {
		_, ok := c.Insert(float64(ti), float64(ti)*0.5, Hermite)
		require.True(t, ok)
	}
	require.Equal(t, 50, c.Len())
	for i := 1; i < c.Len(); i++ {
		assert.Greater(t, c.GetTime(i), c.GetTime(i-1))
	}
}

func TestInsertReturnsSortedIndex(t *testing.T) {
	c := New()
	c.Insert(0, 0, Linear)
	c.Insert(2, 0, Linear)
	i, ok := c.Insert(1, 5, Linear)
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, 1.0, c.GetTime(1))
}

func TestInsertRejectsCollidingTime(t *testing.T) {
	c := New()
	_, ok := c.Insert(1, 2, Hermite)
	require.True(t, ok)
	_, ok = c.Insert(1, 99, Hermite)
	assert.False(t, ok)
	_, ok = c.Insert(1+1e-9, 99, Hermite)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2.0, c.GetValue(0))
}

func TestRemoveOutOfRangeIsNoop(t *testing.T) {
	c := New()
	c.Insert(0, 1, Linear)
	c.Remove(-1)
	c.Remove(5)
	assert.Equal(t, 1, c.Len())
}

func TestSetTimeWithoutCrossingReturnsSameIndex(t *testing.T) {
	c := New()
	c.Insert(0, 0, Linear)
	c.Insert(1, 0, Linear)
	c.Insert(2, 0, Linear)

	idx, moved := c.SetTime(1, 1.5)
	assert.False(t, moved)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 1.5, c.GetTime(1))
}

func TestSetTimeAcrossNeighborReturnsNewIndex(t *testing.T) {
	c := New()
	c.Insert(0, 10, Linear)
	c.Insert(1, 20, Linear)
	c.Insert(2, 30, Linear)

	idx, moved := c.SetTime(0, 1.5)
	require.True(t, moved)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 1.5, c.GetTime(idx))
	assert.Equal(t, 10.0, c.GetValue(idx))
	for i := 1; i < c.Len(); i++ {
		assert.Greater(t, c.GetTime(i), c.GetTime(i-1))
	}
}

func TestSetTimeLandingOnNeighborIsNudged(t *testing.T) {
	c := New()
	c.Insert(0, 0, Linear)
	c.Insert(1, 0, Linear)
	c.Insert(2, 0, Linear)

	idx, moved := c.SetTime(0, 2)
	require.True(t, moved)
	assert.Equal(t, 1, idx) // nudged just below the keyframe it landed on
	assert.InDelta(t, 2.0, c.GetTime(idx), 1e-5)
	for i := 1; i < c.Len(); i++ {
		assert.Greater(t, c.GetTime(i), c.GetTime(i-1))
	}
}

func TestSetTimeKeepsIdentity(t *testing.T) {
	c := New()
	c.Insert(0, 0, Hermite)
	c.Insert(1, 0, Hermite)
	id := c.GetID(0)

	idx, moved := c.SetTime(0, 3)
	require.True(t, moved)
	assert.Equal(t, id, c.GetID(idx))
}

func TestAutoTangentBoundaryAndInterior(t *testing.T) {
	c, err := WithAutoTangents([]float64{0, 1, 3}, []float64{0, 2, 2})
	require.NoError(t, err)

	in, out := c.GetInOutTangent(0)
	assert.InDelta(t, 2.0, in, 1e-12) // secant to the only right neighbor
	assert.InDelta(t, 2.0, out, 1e-12)

	in, out = c.GetInOutTangent(1)
	assert.InDelta(t, 2.0/3.0, in, 1e-12) // secant across the neighbors
	assert.InDelta(t, 2.0/3.0, out, 1e-12)

	in, out = c.GetInOutTangent(2)
	assert.InDelta(t, 0.0, in, 1e-12)
	assert.InDelta(t, 0.0, out, 1e-12)
}

func TestAutoTangentFollowsNeighborMoves(t *testing.T) {
	c, err := WithAutoTangents([]float64{0, 1, 2}, []float64{0, 0, 0})
	require.NoError(t, err)

	c.SetValue(2, 4)
	in, _ := c.GetInOutTangent(1)
	assert.InDelta(t, 2.0, in, 1e-12)

	c.Remove(2)
	in, out := c.GetInOutTangent(1)
	assert.InDelta(t, 0.0, in, 1e-12)
	assert.InDelta(t, 0.0, out, 1e-12)
}

func TestDirectTangentSettersIgnoredUnderAutoAndFlat(t *testing.T) {
	c, err := WithAutoTangents([]float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)

	wantIn, wantOut := c.GetInOutTangent(0)
	c.SetInTangent(0, 42)
	c.SetOutTangent(0, 42)
	c.SetInOutTangent(0, 42)
	in, out := c.GetInOutTangent(0)
	assert.Equal(t, wantIn, in)
	assert.Equal(t, wantOut, out)

	c.SetTangentControl(0, TangentFlat)
	c.SetInOutTangent(0, 42)
	in, out = c.GetInOutTangent(0)
	assert.Equal(t, 0.0, in)
	assert.Equal(t, 0.0, out)
}

func TestFreeMirrorsAndBrokenSplits(t *testing.T) {
	c, _ := WithAutoTangents([]float64{0, 1}, []float64{0, 1})
	c.SetTangentControl(0, TangentFree)

	c.SetInTangent(0, 3)
	in, out := c.GetInOutTangent(0)
	assert.Equal(t, 3.0, in)
	assert.Equal(t, 3.0, out)

	c.SetTangentControl(0, TangentBroken)
	c.SetOutTangent(0, -1)
	in, out = c.GetInOutTangent(0)
	assert.Equal(t, 3.0, in)
	assert.Equal(t, -1.0, out)
}

func TestLeavingAutoFreezesComputedTangents(t *testing.T) {
	c, _ := WithAutoTangents([]float64{0, 1}, []float64{0, 2})
	in0, out0 := c.GetInOutTangent(0)

	c.SetTangentControl(0, TangentFree)
	in, out := c.GetInOutTangent(0)
	assert.Equal(t, in0, in)
	assert.Equal(t, out0, out)

	// No longer tracks shape changes once frozen.
	c.SetValue(1, 100)
	in, out = c.GetInOutTangent(0)
	assert.Equal(t, in0, in)
	assert.Equal(t, out0, out)
}

func TestEnteringAutoRecomputes(t *testing.T) {
	c, _ := WithAutoTangents([]float64{0, 1}, []float64{0, 2})
	c.SetTangentControl(0, TangentBroken)
	c.SetInOutTangent(0, 77)

	c.SetTangentControl(0, TangentAuto)
	in, _ := c.GetInOutTangent(0)
	assert.InDelta(t, 2.0, in, 1e-12)
}

func TestWithAutoTangentsRejectsUnsortedTimes(t *testing.T) {
	_, err := WithAutoTangents([]float64{0, 2, 1}, []float64{0, 0, 0})
	assert.Error(t, err)
	_, err = WithAutoTangents([]float64{0, 1}, []float64{0})
	assert.Error(t, err)
}

func TestReplaceSortsDefensively(t *testing.T) {
	c := New()
	c.Replace([]Keyframe{
		{ID: "b", Time: 2, Value: 2},
		{ID: "a", Time: 1, Value: 1},
	})
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "a", c.GetID(0))
	assert.Equal(t, "b", c.GetID(1))
}

func TestAccessorsOutOfRange(t *testing.T) {
	c := New()
	assert.Equal(t, 0.0, c.GetTime(3))
	assert.Equal(t, 0.0, c.GetValue(-1))
	assert.Equal(t, "", c.GetID(0))
	idx, moved := c.SetTime(9, 1)
	assert.False(t, moved)
	assert.Equal(t, 9, idx)
}
