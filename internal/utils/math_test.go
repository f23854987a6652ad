package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillBonus(t *testing.T) {
	tests := []struct {
		ranks    int
		expected int
	}{
		{-3, 0},
		{0, 0},
		{1, 5},
		{10, 50},
		{11, 54},
		{20, 90},
		{25, 105},
		{30, 120},
		{40, 140},
		{45, 145},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SkillBonus(tt.ranks), "ranks=%d", tt.ranks)
	}
}

func TestRandomIntn(t *testing.T) {
	assert.Zero(t, RandomIntn(0))
	for i := 0; i < 50; i++ {
		assert.Less(t, RandomIntn(3), 3)
	}
}

func TestRandomIntn_CoversRange(t *testing.T) {
	seen := map[int]bool{}
	for i := 0; i < 500 && len(seen) < 4; i++ {
		seen[RandomIntn(4)] = true
	}
	assert.Len(t, seen, 4)
}

func TestRandomInt_Bounds(t *testing.T) {
	for i := 0; i < 200; i++ {
		v := RandomInt(1, 3)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 3)
	}
	assert.Equal(t, 5, RandomInt(5, 2), "inverted range returns min")
}

func TestSampleIndices(t *testing.T) {
	t.Run("distinct and in range", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			got := SampleIndices(5, 3, nil)
			assert.Len(t, got, 3)
			seen := map[int]bool{}
			for _, v := range got {
				assert.GreaterOrEqual(t, v, 0)
				assert.Less(t, v, 5)
				assert.False(t, seen[v], "duplicate index %d", v)
				seen[v] = true
			}
		}
	})

	t.Run("capped at n", func(t *testing.T) {
		assert.ElementsMatch(t, []int{0, 1, 2}, SampleIndices(3, 10, nil))
	})

	t.Run("non-positive k", func(t *testing.T) {
		assert.Empty(t, SampleIndices(3, 0, nil))
		assert.Empty(t, SampleIndices(0, 2, nil))
	})

	t.Run("deterministic source", func(t *testing.T) {
		last := func(n int) int { return n - 1 }
		assert.Equal(t, []int{3, 0}, SampleIndices(4, 2, last))
	})
}
