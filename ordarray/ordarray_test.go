// SPDX-License-Identifier: MIT

package ordarray_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsort/ordarray"
)

func TestNew_BadCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		a, err := ordarray.New(c)
		assert.ErrorIs(t, err, ordarray.ErrBadCapacity)
		assert.Nil(t, a)
	}
}

func TestInsert_KeepsOrder(t *testing.T) {
	a, err := ordarray.New(8)
	require.NoError(t, err)
	for _, v := range []int{38, 29, 14, 35, -1, 35} {
		require.NoError(t, a.Insert(v))
	}
	assert.Equal(t, []int{-1, 14, 29, 35, 35, 38}, a.Values())
	assert.Equal(t, 6, a.Len())
	assert.Equal(t, 8, a.Cap())
}

func TestInsert_Full(t *testing.T) {
	a, err := ordarray.New(2)
	require.NoError(t, err)
	require.NoError(t, a.Insert(2))
	require.NoError(t, a.Insert(1))
	assert.ErrorIs(t, a.Insert(3), ordarray.ErrFull)
	assert.Equal(t, []int{1, 2}, a.Values())
}

func TestFind(t *testing.T) {
	a, err := ordarray.FromValues(10, 38, 29, 14, 35, 22, 61, 59, 36, 2)
	require.NoError(t, err)

	assert.Equal(t, 0, a.Find(2))
	assert.Equal(t, 8, a.Find(61))
	assert.Equal(t, 3, a.Find(29))
	assert.Equal(t, -1, a.Find(30))
	assert.Equal(t, -1, a.Find(100))
	assert.Equal(t, -1, a.Find(-5))

	empty, err := ordarray.New(1)
	require.NoError(t, err)
	assert.Equal(t, -1, empty.Find(0))
}

func TestDelete(t *testing.T) {
	a, err := ordarray.FromValues(5, 5, 1, 3, 3)
	require.NoError(t, err)

	assert.True(t, a.Delete(3))
	assert.Equal(t, []int{1, 3, 5}, a.Values())
	assert.False(t, a.Delete(4))
	assert.True(t, a.Delete(1))
	assert.True(t, a.Delete(5))
	assert.True(t, a.Delete(3))
	assert.Equal(t, 0, a.Len())
	assert.False(t, a.Delete(3))

	// room again after deletes
	require.NoError(t, a.Insert(9))
	assert.Equal(t, []int{9}, a.Values())
}

func TestFromValues_TooMany(t *testing.T) {
	a, err := ordarray.FromValues(2, 1, 2, 3)
	assert.ErrorIs(t, err, ordarray.ErrFull)
	assert.Nil(t, a)
}

func TestValues_IsACopy(t *testing.T) {
	a, err := ordarray.FromValues(3, 3, 2, 1)
	require.NoError(t, err)
	v := a.Values()
	v[0] = 100
	assert.Equal(t, []int{1, 2, 3}, a.Values())
}

// TestRandomOperations mirrors a sorted reference slice through random
// inserts and deletes.
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a, err := ordarray.New(64)
	require.NoError(t, err)
	var ref []int

	for step := 0; step < 2000; step++ {
		v := rng.Intn(40) - 20
		if rng.Intn(2) == 0 && a.Len() < a.Cap() {
			require.NoError(t, a.Insert(v))
			ref = append(ref, v)
			slices.Sort(ref)
		} else {
			deleted := a.Delete(v)
			if i := slices.Index(ref, v); i >= 0 {
				require.True(t, deleted)
				ref = slices.Delete(ref, i, i+1)
			} else {
				require.False(t, deleted)
			}
		}
		require.Equal(t, len(ref), a.Len())
		if len(ref) > 0 {
			require.Equal(t, ref, a.Values())
		}
		if idx := a.Find(v); idx >= 0 {
			require.Equal(t, v, a.Values()[idx])
		}
	}
}
