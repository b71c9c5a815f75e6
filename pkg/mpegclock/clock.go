// Package mpegclock provides arithmetic on the fixed 90 kHz MPEG system
// clock used by MPEG-TS presentation timestamps.
package mpegclock

import "math"

// Rate is the MPEG system clock frequency in Hz.
const Rate = 90000

// The PTS counter is 33 bits wide, so timestamps wrap every 2^33 ticks.
const (
	wrapPeriod    = float64(1) * (1 << 33)
	wrapThreshold = float64(1) * (1 << 32)
)

// Rescale converts a tick count between timescales, truncating toward zero.
// A zero source timescale leaves the value untouched.
func Rescale(value int64, from, to uint32) int64 {
	if from == to || from == 0 {
		return value
	}
	return value * int64(to) / int64(from)
}

// Normalize folds value into the 33-bit wrap-around window nearest reference:
// a timestamp that wrapped relative to the reference is shifted by whole
// wrap periods until it lands within half a period of it.
func Normalize(value, reference float64) float64 {
	offset := wrapPeriod
	if reference < value {
		offset = -wrapPeriod
	}
	for math.Abs(value-reference) > wrapThreshold {
		value += offset
	}
	return value
}

// ToSeconds converts 90 kHz ticks to seconds.
func ToSeconds(ticks int64) float64 {
	return float64(ticks) / Rate
}

// FromSeconds converts seconds to 90 kHz ticks, truncating.
func FromSeconds(sec float64) int64 {
	return int64(sec * Rate)
}
