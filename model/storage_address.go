package model

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/benchwatch/tracepub"
)

// RunBatch is the shared context of one publishing run. It is computed
// once per invocation and reused for every file in the batch, so all
// traces from one run land under the same directory regardless of which
// machine produced them.
type RunBatch struct {
	Repo      string
	Branch    string
	Commit    string
	Timestamp time.Time
}

// NewRunBatch builds the run-batch context. The branch is sanitized
// (slashes would otherwise nest as directories in object-storage keys),
// the commit hash is truncated, and the timestamp is truncated to
// seconds.
func NewRunBatch(repo, branch, commit string, now time.Time) RunBatch {
	if len(commit) > tracepub.CommitHashLength {
		commit = commit[:tracepub.CommitHashLength]
	}

	return RunBatch{
		Repo:      repo,
		Branch:    strings.ReplaceAll(branch, "/", "-"),
		Commit:    commit,
		Timestamp: now.UTC().Truncate(time.Second),
	}
}

// Directory names the per-run directory all of the batch's traces share.
func (b RunBatch) Directory() string {
	return fmt.Sprintf("%d-%s", b.Timestamp.Unix(), b.Commit)
}

// StorageAddress is the object-storage key a trace is archived under.
type StorageAddress string

// BuildStorageAddress derives the storage key for one trace. The key is
// unique per (repo, branch, benchmark, mode, machine, run batch,
// filename): the machine label appears both as a path component and as a
// filename prefix, so identically named files from different machines
// never collide inside the shared run-batch directory. Identical inputs
// always yield the identical address.
func BuildStorageAddress(t ParsedTrace, machine, filename string, batch RunBatch) StorageAddress {
	return StorageAddress(path.Join(
		batch.Repo,
		batch.Branch,
		t.Benchmark,
		t.ThreadLabel(),
		machine,
		batch.Directory(),
		machine+"-"+filename,
	))
}
