package vtt

import (
	"errors"
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"01:02:03.456", 3723.456, true},
		{"02:03.456", 123.456, true},
		{"00:00.000", 0, true},
		{"00:00:00.000", 0, true},
		{"10:00.500", 600.5, true},
		// Malformed
		{"", 0, false},
		{"5", 0, false},
		{"aa:03.456", 0, false},
		{"02:bb.456", 0, false},
		{"01:xx:03.456", 0, false},
		{"01:02:03.456:07", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)
			if tt.ok {
				if err != nil {
					t.Fatalf("ParseTimestamp(%q) error: %v", tt.input, err)
				}
				if got != tt.expected {
					t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.input, got, tt.expected)
				}
				return
			}
			if err == nil {
				t.Fatalf("ParseTimestamp(%q) expected error, got %v", tt.input, got)
			}
			if !errors.Is(err, ErrMalformedTimestamp) {
				t.Errorf("ParseTimestamp(%q) error %v is not ErrMalformedTimestamp", tt.input, err)
			}
		})
	}
}

func TestConsumeTimestamp(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		rest     string
		ok       bool
	}{
		{"00:01.000 --> 00:02.000", 1.0, " --> 00:02.000", true},
		{"00:00:05.250", 5.25, "", true},
		{"1:02:03.500 align:start", 3723.5, " align:start", true},
		{"garbage", 0, "garbage", false},
		{"00:01", 0, "00:01", false},
		{"00:01.00", 0, "00:01.00", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, rest, err := consumeTimestamp(tt.input)
			if tt.ok {
				if err != nil {
					t.Fatalf("consumeTimestamp(%q) error: %v", tt.input, err)
				}
				if got != tt.expected {
					t.Errorf("consumeTimestamp(%q) = %v, want %v", tt.input, got, tt.expected)
				}
				if rest != tt.rest {
					t.Errorf("consumeTimestamp(%q) rest = %q, want %q", tt.input, rest, tt.rest)
				}
				return
			}
			if err == nil {
				t.Fatalf("consumeTimestamp(%q) expected error, got %v", tt.input, got)
			}
		})
	}
}
