package vtt

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedTiming is returned when a cue timing line cannot be parsed.
var ErrMalformedTiming = errors.New("malformed cue timing")

// timingSeparator splits the start and end timestamps of a timing line.
const timingSeparator = "-->"

// Matches the WEBVTT signature line, optionally followed by a space or tab
// and arbitrary trailing text.
var signatureRegex = regexp.MustCompile(`^WEBVTT([ \t].*)?$`)

// Matches the start of a NOTE comment block.
var noteRegex = regexp.MustCompile(`^NOTE($|[ \t])`)

// Parser states.
const (
	stateSignature = iota
	stateHeader
	stateID
	stateTiming
	stateCueText
	stateNote
	stateBadCue
)

// Parser provides push-driven WebVTT parsing with callback-based processing.
// Feed newline-terminated text via Parse and finish with Flush; cues are
// reported through OnCue in input order.
type Parser struct {
	// OnCue is called for each completed cue.
	OnCue func(cue *Cue)

	// OnParseError is called for recoverable syntax errors.
	// If nil, errors are silently ignored.
	OnParseError func(err error)

	// OnFlush is called once after Flush has drained any pending cue.
	OnFlush func()

	buffer string
	state  int
	cue    *Cue
}

// Parse consumes a chunk of text. Only complete, newline-terminated lines are
// processed; a trailing partial line is buffered until the next call or Flush.
func (p *Parser) Parse(chunk string) {
	p.buffer += chunk
	for {
		line, ok := p.nextLine()
		if !ok {
			return
		}
		for p.processLine(line) {
		}
	}
}

// Flush finalizes any pending cue and invokes OnFlush. The parser must not be
// reused afterwards.
func (p *Parser) Flush() {
	if p.cue != nil || p.buffer != "" {
		// Force any buffered partial line and pending cue text to terminate.
		p.Parse("\n\n")
	}
	if p.OnFlush != nil {
		p.OnFlush()
	}
}

// nextLine pops one complete line off the buffer, without its terminator.
func (p *Parser) nextLine() (string, bool) {
	idx := strings.IndexByte(p.buffer, '\n')
	if idx < 0 {
		return "", false
	}
	line := strings.TrimSuffix(p.buffer[:idx], "\r")
	p.buffer = p.buffer[idx+1:]
	return line, true
}

// processLine advances the state machine by one line. It returns true when
// the same line must be reprocessed under the new state, which happens when a
// timing line doubles as the terminator of the cue above it.
func (p *Parser) processLine(line string) bool {
	switch p.state {
	case stateSignature:
		if signatureRegex.MatchString(line) {
			p.state = stateHeader
			return false
		}
		// HLS subtitle fragments are supposed to open with WEBVTT, but by
		// the time the realignment layer has consumed the header directives
		// the signature may already be gone. Tolerate its absence and treat
		// the line as cue content.
		p.state = stateID
		return line != ""

	case stateHeader:
		// "Name: value" header lines carry settings we do not interpret.
		if line == "" {
			p.state = stateID
		}
		return false

	case stateNote:
		if line == "" {
			p.state = stateID
		}
		return false

	case stateID:
		if noteRegex.MatchString(line) {
			p.state = stateNote
			return false
		}
		if line == "" {
			return false
		}
		p.cue = &Cue{}
		p.state = stateTiming
		if !strings.Contains(line, timingSeparator) {
			p.cue.ID = line
			return false
		}
		return true

	case stateTiming:
		if err := p.parseTiming(line); err != nil {
			p.reportError(err)
			p.cue = nil
			p.state = stateBadCue
			return false
		}
		p.state = stateCueText
		return false

	case stateCueText:
		if line == "" || strings.Contains(line, timingSeparator) {
			p.emit()
			p.state = stateID
			// A timing line both ends this cue and starts the next one.
			return line != ""
		}
		if p.cue.Text != "" {
			p.cue.Text += "\n"
		}
		p.cue.Text += line
		return false

	case stateBadCue:
		if line == "" {
			p.state = stateID
		}
		return false
	}
	return false
}

// parseTiming parses "<start> --> <end> [settings]" into the pending cue.
// Cue settings are tokenized past but never interpreted.
func (p *Parser) parseTiming(line string) error {
	start, rest, err := consumeTimestamp(strings.TrimSpace(line))
	if err != nil {
		return fmt.Errorf("%w: start time in %q: %w", ErrMalformedTiming, line, err)
	}
	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, timingSeparator) {
		return fmt.Errorf("%w: missing %q in %q", ErrMalformedTiming, timingSeparator, line)
	}
	rest = strings.TrimLeft(rest[len(timingSeparator):], " \t")
	end, _, err := consumeTimestamp(rest)
	if err != nil {
		return fmt.Errorf("%w: end time in %q: %w", ErrMalformedTiming, line, err)
	}

	p.cue.StartTime = start
	p.cue.EndTime = end
	return nil
}

func (p *Parser) emit() {
	if p.cue == nil {
		return
	}
	if p.OnCue != nil {
		p.OnCue(p.cue)
	}
	p.cue = nil
}

func (p *Parser) reportError(err error) {
	if p.OnParseError != nil {
		p.OnParseError(err)
	}
}
