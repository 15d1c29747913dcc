package misc

import "math"

// ClampUint8 narrows a computed channel value to a byte. Values outside [0, 255] saturate and NaN maps to 0.
func ClampUint8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// ClampInt is ClampUint8 for values that were already truncated to an integer.
func ClampInt(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
