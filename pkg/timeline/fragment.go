package timeline

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KonstantinGeist/hlsvtt/pkg/mpegclock"
	"github.com/KonstantinGeist/hlsvtt/pkg/vtt"
)

// timestampMapPrefix marks the in-band directive correlating the fragment's
// local clock with the MPEG clock (RFC 8216 section 3.5).
const timestampMapPrefix = "X-TIMESTAMP-MAP="

// ErrMalformedTimestampMap is reported when the LOCAL field of an
// X-TIMESTAMP-MAP directive cannot be parsed as a clock string.
var ErrMalformedTimestampMap = errors.New("malformed X-TIMESTAMP-MAP timestamp")

// FragmentParserConfig configures a FragmentParser.
type FragmentParserConfig struct {
	Logger *slog.Logger

	// OnCues receives the realigned cues of one fragment in emission order.
	OnCues func(cues []*vtt.Cue)

	// OnError receives the error when a fragment cannot be parsed.
	// If nil, OnCues is invoked even when a parse error was recorded.
	OnError func(err error)
}

// FragmentParser realigns the cues of WebVTT subtitle fragments onto the
// presentation timeline tracked by a caller-owned ContinuityTable. Each Parse
// call runs to completion synchronously and invokes exactly one of the two
// outcome callbacks.
type FragmentParser struct {
	config FragmentParserConfig
	table  *ContinuityTable
}

// NewFragmentParser creates a fragment parser bound to the given table.
func NewFragmentParser(table *ContinuityTable, config FragmentParserConfig) *FragmentParser {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &FragmentParser{config: config, table: table}
}

// fragmentParse is the state of a single Parse call. The timestamp-map fields
// live here and are discarded once the fragment has been flushed.
type fragmentParse struct {
	parser     *FragmentParser
	cc         int
	initPTS90k int64
	timeOffset float64

	timestampMap bool
	mpegTS       int64
	localTime    float64
	hasLocalTime bool

	cues       []*vtt.Cue
	grammarErr error
	mapErr     error
}

// Parse realigns one fragment's cues. The payload is the undecoded fragment
// body; initPTS is the stream's initial presentation timestamp in timescale
// units; cc is the fragment's continuity counter; timeOffset is the
// fragment's start on the presentation timeline in seconds.
func (p *FragmentParser) Parse(payload []byte, initPTS int64, timescale uint32, cc int, timeOffset float64) {
	text, err := vtt.Decode(payload)
	if err != nil {
		if p.config.OnError != nil {
			p.config.OnError(fmt.Errorf("decoding fragment: %w", err))
		}
		return
	}

	f := &fragmentParse{
		parser:     p,
		cc:         cc,
		initPTS90k: mpegclock.Rescale(initPTS, timescale, mpegclock.Rate),
		timeOffset: timeOffset,
	}

	driver := &vtt.Parser{
		OnCue:        f.onCue,
		OnParseError: func(err error) { f.grammarErr = err },
		OnFlush:      f.onFlush,
	}

	inHeader := true
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if inHeader {
			if strings.HasPrefix(line, timestampMapPrefix) {
				// At most one directive is allowed, so the header scan ends
				// here and the line is consumed, never forwarded.
				inHeader = false
				f.readTimestampMap(line[len(timestampMapPrefix):])
				continue
			}
			if line == "" {
				inHeader = false
			}
		}
		driver.Parse(line + "\n")
	}
	driver.Flush()
}

// readTimestampMap extracts the LOCAL and MPEGTS fields of the directive.
// Fields may appear in either order; unrecognized fields are skipped. A LOCAL
// value that fails to parse disables the map for this fragment only.
func (f *fragmentParse) readTimestampMap(directive string) {
	f.timestampMap = true
	localValue := "00:00.000"
	for _, field := range strings.Split(directive, ",") {
		switch {
		case strings.HasPrefix(field, "LOCAL:"):
			localValue = field[len("LOCAL:"):]
		case strings.HasPrefix(field, "MPEGTS:"):
			f.mpegTS, _ = strconv.ParseInt(field[len("MPEGTS:"):], 10, 64)
		}
	}

	local, err := vtt.ParseTimestamp(localValue)
	if err != nil {
		f.timestampMap = false
		f.mapErr = fmt.Errorf("%w: %v", ErrMalformedTimestampMap, err)
		f.parser.config.Logger.Debug("disabling timestamp map",
			slog.String("local", localValue),
			slog.String("error", err.Error()))
		return
	}

	f.localTime = local
	f.hasLocalTime = true
	f.parser.config.Logger.Debug("timestamp map found",
		slog.Float64("local", local),
		slog.Int64("mpegts", f.mpegTS))
}

// onFlush settles the outcome of the parse. A grammar error always wins; a
// malformed timestamp map is only surfaced when it left nothing to deliver.
func (f *fragmentParse) onFlush() {
	err := f.grammarErr
	if err == nil && f.mapErr != nil && len(f.cues) == 0 {
		err = f.mapErr
	}
	if err != nil && f.parser.config.OnError != nil {
		f.parser.config.OnError(err)
		return
	}
	if f.parser.config.OnCues != nil {
		f.parser.config.OnCues(f.cues)
	}
}
