package model

import (
	"fmt"
	"strings"

	"github.com/benchwatch/tracepub"
	"github.com/pkg/errors"
)

// ParsedTrace is the decoded identity of a trace file, derived entirely
// from its filename. The upstream benchmark runner names traces
// "<benchmark>-<mode>-<reserved>-<runID>-<remainder>" where the remainder
// carries the file extension; the reserved segment and the remainder are
// placeholders in the naming scheme and are never interpreted here.
type ParsedTrace struct {
	Benchmark string
	Mode      string
	RunID     string
}

const traceFilenameSegments = 5

// MalformedTraceFilenameError indicates a filename that does not follow
// the runner's naming scheme. Callers skip the file and continue the
// batch.
type MalformedTraceFilenameError struct {
	Filename string
}

func (e *MalformedTraceFilenameError) Error() string {
	return fmt.Sprintf("trace filename '%s' has fewer than four dash-separated segments", e.Filename)
}

// IsMalformedTraceFilename reports whether err (or its cause) is a
// MalformedTraceFilenameError.
func IsMalformedTraceFilename(err error) bool {
	if err == nil {
		return false
	}
	_, ok := errors.Cause(err).(*MalformedTraceFilenameError)
	return ok
}

// ParseTraceFilename decodes a trace filename into a ParsedTrace. The
// split is bounded at five segments; segment two and the trailing
// remainder are reserved and discarded.
func ParseTraceFilename(filename string) (ParsedTrace, error) {
	parts := strings.SplitN(filename, "-", traceFilenameSegments)
	if len(parts) < 4 {
		return ParsedTrace{}, &MalformedTraceFilenameError{Filename: filename}
	}

	return ParsedTrace{
		Benchmark: parts[0],
		Mode:      parts[1],
		RunID:     parts[3],
	}, nil
}

// ThreadLabel renders the execution mode as it appears in storage
// addresses and group labels, e.g. "single-thread".
func (t ParsedTrace) ThreadLabel() string {
	return t.Mode + tracepub.ThreadLabelSuffix
}

// GroupLabel names the summary group a trace belongs to.
func (t ParsedTrace) GroupLabel(machine string) string {
	return fmt.Sprintf("%s (%s) on %s", t.Benchmark, t.ThreadLabel(), machine)
}
