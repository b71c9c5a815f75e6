// Package timeline realigns WebVTT cues from HLS subtitle fragments onto the
// player's continuous presentation timeline across stream discontinuities.
package timeline

// ContinuityRecord tracks where one contiguous span of the media timeline
// began on the presentation timeline.
type ContinuityRecord struct {
	// Start is the presentation time at which this continuity began.
	Start float64

	// PrevCC is the continuity counter active immediately before this one,
	// or -1 when there is none.
	PrevCC int

	// New is true until cues have been aligned against this continuity.
	New bool
}

// ContinuityTable is the per-session bookkeeping for discontinuity offsets.
// The caller owns the table, hands it to every fragment parse of the session,
// and must not run two parses against it concurrently; the table performs no
// locking of its own.
type ContinuityTable struct {
	records map[int]*ContinuityRecord
	lastCC  int

	// CCOffset is the cumulative offset, in seconds, accumulated across
	// discontinuities.
	CCOffset float64

	// PresentationOffset is the presentation-time reference used to place
	// cues when a fragment carries no timestamp map.
	PresentationOffset float64
}

// NewContinuityTable returns a table seeded with continuity 0 starting at
// presentation time zero, so an unbroken stream never needs resolution.
func NewContinuityTable() *ContinuityTable {
	return &ContinuityTable{
		records: map[int]*ContinuityRecord{
			0: {Start: 0, PrevCC: -1, New: false},
		},
	}
}

// Register records a newly observed continuity counter and where that span
// starts on the presentation timeline. Registering a counter that is already
// present is a no-op.
func (t *ContinuityTable) Register(cc int, start float64) {
	if _, ok := t.records[cc]; ok {
		return
	}
	t.records[cc] = &ContinuityRecord{Start: start, PrevCC: t.lastCC, New: true}
	t.lastCC = cc
}

// Record returns the record for cc, or nil when the counter was never
// registered.
func (t *ContinuityTable) Record(cc int) *ContinuityRecord {
	return t.records[cc]
}

// resolveOffset computes the timeline offset for cc before the first cue of a
// pending continuity is aligned. CCOffset and PresentationOffset are always
// rewritten as a pair, either directly or after the backward walk completes.
func (t *ContinuityTable) resolveOffset(cc int, presentationTime float64) {
	curr := t.records[cc]
	if curr == nil {
		return
	}
	prev := t.records[curr.PrevCC]

	// Either the very first discontinuity, or cues have been drained since
	// the last one: the offset is simply where this continuity starts.
	if prev == nil || (!prev.New && curr.New) {
		t.CCOffset = curr.Start
		t.PresentationOffset = curr.Start
		curr.New = false
		return
	}

	// Discontinuities arrived back to back with no cues between them, for
	// example stacked ad breaks. Fold in every unresolved gap so the offset
	// reflects the total elapsed time since cues were last emitted.
	for prev != nil && prev.New {
		t.CCOffset += curr.Start - prev.Start
		curr.New = false
		curr = prev
		prev = t.records[curr.PrevCC]
	}
	curr.New = false

	t.PresentationOffset = presentationTime
}
