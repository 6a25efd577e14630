/*
Package tracepub holds application level constants and shared resources
for the tracepub benchmark-trace publishing pipeline.
*/
package tracepub

const (
	// TraceFileExtension identifies execution-trace artifacts in the
	// results tree produced by the upstream benchmark runner.
	TraceFileExtension = ".perfetto-trace"

	// ResultsDirPrefix is the fixed prefix on the per-machine result
	// directories; the remainder of the directory name is the machine
	// label.
	ResultsDirPrefix = "results-"

	// ThreadLabelSuffix is appended to a trace's execution mode to form
	// the thread label used in storage addresses and group labels.
	ThreadLabelSuffix = "-thread"

	// CommitHashLength is the length storage addresses truncate commit
	// hashes to.
	CommitHashLength = 9

	QueueSizeCap = 1024
)

// BuildRevision stores the commit in the git repository at build time and is
// specified with -ldflags at build time.
var BuildRevision = ""
