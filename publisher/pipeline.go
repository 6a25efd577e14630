package publisher

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/benchwatch/tracepub"
	"github.com/benchwatch/tracepub/model"
	"github.com/benchwatch/tracepub/units"
	"github.com/benchwatch/tracepub/util"
	"github.com/evergreen-ci/pail"
	"github.com/evergreen-ci/utility"
	"github.com/mongodb/amboy"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
)

const queueWaitInterval = 10 * time.Millisecond

// UploadFailedError indicates that at least one trace upload failed. The
// run aborts without writing a summary: a partially indexed batch would
// publish dangling links, which is worse than a hard failure. Re-running
// is safe because uploads are idempotent within the same run batch.
type UploadFailedError struct {
	err error
}

func (e *UploadFailedError) Error() string {
	return fmt.Sprintf("trace upload failed: %s", e.err.Error())
}

func (e *UploadFailedError) Cause() error { return e.err }

// IsUploadFailed reports whether err (or its cause) is an
// UploadFailedError.
func IsUploadFailed(err error) bool {
	if err == nil {
		return false
	}
	_, ok := errors.Cause(err).(*UploadFailedError)
	return ok
}

// Pipeline publishes one batch of trace files: discover, parse, address,
// upload, link, and accumulate into a grouped summary written once to
// the report sink. A Pipeline is owned by a single run and not reused.
type Pipeline struct {
	conf   *tracepub.PublisherConfig
	bucket pail.Bucket
	queue  amboy.Queue
	batch  model.RunBatch
	report *model.SummaryReport
}

// NewPipeline builds a pipeline for one publishing run. The run-batch
// context is computed here, once, so every file in the batch shares the
// same timestamp and commit directory.
func NewPipeline(conf *tracepub.PublisherConfig, bucket pail.Bucket, queue amboy.Queue) *Pipeline {
	return &Pipeline{
		conf:   conf,
		bucket: bucket,
		queue:  queue,
		batch:  model.NewRunBatch(conf.RepoName, conf.Branch, conf.CommitHash, time.Now()),
		report: model.NewSummaryReport(),
	}
}

type pipelineEntry struct {
	file    model.TraceFile
	parsed  model.ParsedTrace
	address model.StorageAddress
	job     amboy.Job
}

// Run processes the batch. Malformed filenames are logged and skipped;
// any upload failure aborts the run before the summary is written.
func (p *Pipeline) Run(ctx context.Context) error {
	if err := p.checkSink(); err != nil {
		return errors.Wrap(err, "problem resolving report sink")
	}

	files, err := model.DiscoverTraceFiles(p.conf.ResultsDir)
	if err != nil {
		return errors.WithStack(err)
	}

	entries := p.resolveAddresses(files)

	if !p.conf.DryRun {
		if err := p.uploadAll(ctx, entries); err != nil {
			return err
		}
	}

	// Accumulation runs strictly after the uploads, iterating entries in
	// their discovery order so the summary's first-seen ordering does not
	// depend on upload scheduling.
	for _, e := range entries {
		traceURL := fmt.Sprintf("%s/%s", p.conf.PublicBaseURL, e.address)
		link := fmt.Sprintf("[%s](%s)", e.parsed.RunID, ViewerLink(p.conf.ViewerBaseURL, p.conf.ViewerQueryParam, traceURL))
		p.report.Add(e.parsed.Benchmark, e.parsed.GroupLabel(e.file.MachineLabel), link)
	}

	grip.Info(message.Fields{
		"op":         "publish",
		"batch":      p.batch.Directory(),
		"discovered": len(files),
		"published":  len(entries),
		"skipped":    len(files) - len(entries),
		"dry_run":    p.conf.DryRun,
	})

	return errors.Wrap(p.writeSummary(), "problem writing summary")
}

// resolveAddresses parses each discovered file and assigns its storage
// address. Files with malformed names are skipped and logged, never
// silently dropped, and never abort the batch.
func (p *Pipeline) resolveAddresses(files []model.TraceFile) []pipelineEntry {
	entries := make([]pipelineEntry, 0, len(files))

	for _, f := range files {
		parsed, err := model.ParseTraceFilename(f.Filename)
		if err != nil {
			grip.Warning(message.WrapError(err, message.Fields{
				"op":      "parse trace filename",
				"path":    f.Path,
				"machine": f.MachineLabel,
			}))
			continue
		}

		entries = append(entries, pipelineEntry{
			file:    f,
			parsed:  parsed,
			address: model.BuildStorageAddress(parsed, f.MachineLabel, f.Filename, p.batch),
		})
	}

	return entries
}

// uploadAll pushes every entry's file to the bucket through the queue.
// Uploads are independent and idempotent, so they may run in parallel;
// the first error found after the queue drains fails the whole run.
func (p *Pipeline) uploadAll(ctx context.Context, entries []pipelineEntry) error {
	for i := range entries {
		j := units.NewTraceUploadJob(p.bucket, entries[i].file.Path, string(entries[i].address))
		if err := p.queue.Put(ctx, j); err != nil {
			return errors.Wrapf(err, "problem enqueuing upload for '%s'", entries[i].file.Path)
		}
		entries[i].job = j
	}

	if !amboy.WaitInterval(ctx, p.queue, queueWaitInterval) {
		return errors.New("upload queue interrupted before completion")
	}

	catcher := grip.NewBasicCatcher()
	for _, e := range entries {
		catcher.Add(e.job.Error())
	}
	if catcher.HasErrors() {
		return &UploadFailedError{err: catcher.Resolve()}
	}

	return nil
}

// checkSink validates the report sink before any upload starts. "-"
// means standard output and always passes; otherwise the sink's parent
// directory must already exist, so a mistyped path fails the run
// instead of scattering summary files.
func (p *Pipeline) checkSink() error {
	if p.conf.SummaryPath == "-" {
		return nil
	}

	if dir := filepath.Dir(p.conf.SummaryPath); !utility.FileExists(dir) {
		return errors.Errorf("summary directory '%s' does not exist", dir)
	}

	return nil
}

// writeSummary renders the accumulated report and appends it to the
// sink in one write. The sink file itself is created on first use;
// build summary surfaces are append-only, so existing content is never
// truncated.
func (p *Pipeline) writeSummary() error {
	buf := &strings.Builder{}
	if err := p.report.Render(buf); err != nil {
		return errors.WithStack(err)
	}

	if p.conf.SummaryPath == "-" {
		_, err := io.WriteString(os.Stdout, buf.String())
		return errors.WithStack(err)
	}

	return errors.WithStack(util.AppendString(p.conf.SummaryPath, buf.String()))
}
