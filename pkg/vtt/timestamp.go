package vtt

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedTimestamp is returned when a clock string cannot be parsed.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// ParseTimestamp converts a clock string of the form "[HH:]MM:SS.mmm" into
// seconds. Hours are optional and default to zero. Every field must parse as
// a finite number.
func ParseTimestamp(s string) (float64, error) {
	fields := strings.Split(s, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
	}

	seconds, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil || math.IsInf(seconds, 0) || math.IsNaN(seconds) {
		return 0, fmt.Errorf("%w: bad seconds in %q", ErrMalformedTimestamp, s)
	}
	minutes, err := strconv.Atoi(fields[len(fields)-2])
	if err != nil {
		return 0, fmt.Errorf("%w: bad minutes in %q", ErrMalformedTimestamp, s)
	}
	var hours int
	if len(fields) == 3 {
		hours, err = strconv.Atoi(fields[0])
		if err != nil {
			return 0, fmt.Errorf("%w: bad hours in %q", ErrMalformedTimestamp, s)
		}
	}

	millis := seconds*1000 + float64(minutes)*60000 + float64(hours)*3600000
	return millis / 1000, nil
}

// Matches a cue timestamp at the start of a timing line: MM:SS.mmm with
// optional leading hours.
var cueTimestampRegex = regexp.MustCompile(`^(\d+):(\d{1,2})(?::(\d{1,2}))?\.(\d{3})`)

// consumeTimestamp parses a cue timestamp at the start of input and returns
// the value in seconds together with the unconsumed remainder of the line.
func consumeTimestamp(input string) (float64, string, error) {
	m := cueTimestampRegex.FindStringSubmatch(input)
	if m == nil {
		return 0, input, fmt.Errorf("%w: %q", ErrMalformedTimestamp, input)
	}

	var hours, minutes, seconds int
	if m[3] != "" {
		hours, _ = strconv.Atoi(m[1])
		minutes, _ = strconv.Atoi(m[2])
		seconds, _ = strconv.Atoi(m[3])
	} else {
		minutes, _ = strconv.Atoi(m[1])
		seconds, _ = strconv.Atoi(m[2])
	}
	millis, _ := strconv.Atoi(m[4])

	total := float64(hours)*3600 + float64(minutes)*60 + float64(seconds) + float64(millis)/1000
	return total, input[len(m[0]):], nil
}
