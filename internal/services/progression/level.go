package progression

import "math"

// Level computes the level reached at the given xp under the configured
// formula. The exponential curve is floor(0.0056 * xp^0.715) + 1; the linear
// one is floor((xp + 5000) / 5000).
func Level(xp uint32, exponential bool) uint32 {
	if exponential {
		return uint32(0.0056*math.Pow(float64(xp), 0.715)) + 1
	}
	return (xp + 5000) / 5000
}
