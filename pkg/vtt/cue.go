// Package vtt provides streaming WebVTT cue parsing for HLS subtitle
// fragments. The parser is driven line by line and reports cues through
// callbacks, which lets the caller interleave its own header handling with
// cue collection.
package vtt

// Cue represents a single subtitle cue. Until realigned by the caller, the
// times are relative to the fragment's own clock.
type Cue struct {
	// ID is the optional identifier line above the timing line.
	ID string

	// StartTime is the cue start in seconds.
	StartTime float64

	// EndTime is the cue end in seconds.
	EndTime float64

	// Text is the cue payload with lines joined by "\n".
	Text string
}
