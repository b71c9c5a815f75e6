package timeline

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/KonstantinGeist/hlsvtt/pkg/mpegclock"
	"github.com/KonstantinGeist/hlsvtt/pkg/vtt"
)

// onCue rewrites one cue from fragment-local time to the presentation
// timeline, cleans its text, assigns an identity when the fragment supplied
// none, and drops cues that end at or before the timeline origin.
func (f *fragmentParse) onCue(cue *vtt.Cue) {
	table := f.parser.table
	curr := table.Record(f.cc)
	cueOffset := table.CCOffset
	mapOffset := mpegclock.ToSeconds(f.mpegTS - f.initPTS90k)

	if curr != nil && curr.New {
		if f.hasLocalTime {
			// A local-time map pins the offset to where this continuity
			// starts on the presentation timeline.
			cueOffset = curr.Start
			table.CCOffset = curr.Start
		} else {
			// cueOffset keeps the value read above; a non-zero map offset
			// overrides it below.
			table.resolveOffset(f.cc, mapOffset)
		}
	}

	if mapOffset != 0 {
		// Once an in-band mapping is established it takes precedence over
		// continuity bookkeeping.
		cueOffset = mapOffset - table.PresentationOffset
	}

	if f.timestampMap {
		duration := cue.EndTime - cue.StartTime
		start := mpegclock.Normalize(
			(cue.StartTime+cueOffset-f.localTime)*mpegclock.Rate,
			f.timeOffset*mpegclock.Rate,
		) / mpegclock.Rate
		cue.StartTime = start
		cue.EndTime = start + duration
	}

	text := strings.TrimSpace(cue.Text)
	cue.Text = reencodeText(text)

	if cue.ID == "" {
		cue.ID = generateCueID(cue.StartTime, cue.EndTime, text)
	}

	if cue.EndTime <= 0 {
		// The adjusted timing falls entirely before the timeline origin.
		f.parser.config.Logger.Debug("dropping cue before timeline origin",
			slog.Float64("start", cue.StartTime),
			slog.Float64("end", cue.EndTime))
		return
	}
	f.cues = append(f.cues, cue)
}

// reencodeText rounds the cue text through a percent-encoded form, which
// collapses any byte-level escaping artifacts left behind by payload
// decoding. Invalid UTF-8 is replaced first so the round trip cannot fail.
func reencodeText(text string) string {
	text = strings.ToValidUTF8(text, "�")
	decoded, err := url.PathUnescape(url.PathEscape(text))
	if err != nil {
		return text
	}
	return decoded
}
