package timeline

import "strconv"

// cueHash is a djb2-xor string hash: cheap and stable, good enough to
// deduplicate cues across repeated delivery of the same fragment. Not
// cryptographic.
func cueHash(s string) string {
	h := uint32(5381)
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		h = h*33 ^ uint32(runes[i])
	}
	return strconv.FormatUint(uint64(h), 10)
}

// generateCueID derives a stable identity from a cue's normalized timing and
// trimmed text.
func generateCueID(start, end float64, text string) string {
	return cueHash(formatSeconds(start)) + cueHash(formatSeconds(end)) + cueHash(text)
}

// formatSeconds renders a timestamp in its shortest exact form so identical
// timings always hash identically.
func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
