package domain

import "math"

// BuildLevels returns count+1 temperatures, base*factor^i truncated toward zero.
// count is clamped to [0, MaxLevelCount].
func BuildLevels(base int, factor float64, count int) []int {
	if count < 0 {
		count = 0
	}
	if count > MaxLevelCount {
		count = MaxLevelCount
	}
	levels := make([]int, 0, count+1)
	for i := 0; i <= count; i++ {
		levels = append(levels, int(float64(base)*math.Pow(factor, float64(i))))
	}
	return levels
}

// SelectNext picks the level that follows the first one current is at or above.
// The last level wraps around to the first. When current is below every level
// the cycle restarts at levels[0].
func SelectNext(current int, levels []int) int {
	if len(levels) == 0 {
		return current
	}
	for i, level := range levels {
		if current >= level {
			return levels[(i+1)%len(levels)]
		}
	}
	return levels[0]
}

// IconFor returns sunrise when moving up (or staying), sunset otherwise.
func IconFor(current, next int) IconKind {
	if next >= current {
		return IconSunrise
	}
	return IconSunset
}
