package utils

import (
	"math/rand/v2"
)

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.IntN(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// RandomIntn returns a random integer in [0, n)
func RandomIntn(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n) //nolint:gosec // Game logic randomness, not security critical
}

// SampleIndices returns k distinct indices drawn uniformly from [0, n) using a
// partial Fisher-Yates shuffle. k is clamped to [0, n]. intn must behave like
// RandomIntn; nil uses RandomIntn.
func SampleIndices(n, k int, intn func(int) int) []int {
	if intn == nil {
		intn = RandomIntn
	}
	if k > n {
		k = n
	}
	if k <= 0 {
		return []int{}
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// SkillBonus converts skill ranks to a roll bonus with diminishing returns:
// +5 per rank up to 10, +4 to 20, +3 to 30, +2 to 40, then +1.
func SkillBonus(ranks int) int {
	tiers := []struct{ upTo, per int }{{10, 5}, {20, 4}, {30, 3}, {40, 2}}

	bonus, prev := 0, 0
	for _, t := range tiers {
		if ranks <= t.upTo {
			if ranks > prev {
				bonus += (ranks - prev) * t.per
			}
			return bonus
		}
		bonus += (t.upTo - prev) * t.per
		prev = t.upTo
	}
	return bonus + (ranks - prev)
}
