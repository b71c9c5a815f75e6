package mpegclock

import "testing"

func TestRescale(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		from, to uint32
		expected int64
	}{
		{"same timescale", 12345, 90000, 90000, 12345},
		{"zero source timescale", 12345, 0, 90000, 12345},
		{"up from 1kHz", 1000, 1000, 90000, 90000},
		{"down to 1kHz", 90000, 90000, 1000, 1000},
		{"truncates toward zero", 1, 3, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Rescale(tt.value, tt.from, tt.to); got != tt.expected {
				t.Errorf("Rescale(%d, %d, %d) = %d, want %d", tt.value, tt.from, tt.to, got, tt.expected)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	const period = float64(1) * (1 << 33)

	tests := []struct {
		name       string
		value, ref float64
		expected   float64
	}{
		{"near reference unchanged", 90000, 0, 90000},
		{"negative near reference unchanged", -90000, 0, -90000},
		{"wrapped low folds up", 5, period - 100, period + 5},
		{"wrapped high folds down", period + 5, 100, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.value, tt.ref); got != tt.expected {
				t.Errorf("Normalize(%v, %v) = %v, want %v", tt.value, tt.ref, got, tt.expected)
			}
		})
	}
}

func TestSecondsConversion(t *testing.T) {
	if got := ToSeconds(90000); got != 1.0 {
		t.Errorf("ToSeconds(90000) = %v, want 1.0", got)
	}
	if got := ToSeconds(-45000); got != -0.5 {
		t.Errorf("ToSeconds(-45000) = %v, want -0.5", got)
	}
	if got := FromSeconds(2.5); got != 225000 {
		t.Errorf("FromSeconds(2.5) = %d, want 225000", got)
	}
}
