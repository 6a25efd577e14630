package model

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/benchwatch/tracepub"
	"github.com/pkg/errors"
)

// TraceFile is a single trace artifact discovered in the local results
// tree. The containing directory's name, minus the fixed "results-"
// prefix, identifies the machine that produced it.
type TraceFile struct {
	Path         string
	Filename     string
	MachineLabel string
}

// DiscoverTraceFiles walks the results tree rooted at root and returns
// every trace file found under a per-machine results directory, in
// lexicographic path order. Files outside a "results-<machine>"
// directory or without the trace extension are ignored. The tree is
// read-only; discovery never modifies it.
func DiscoverTraceFiles(root string) ([]TraceFile, error) {
	var files []TraceFile

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.Wrapf(err, "problem walking '%s'", path)
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(info.Name(), tracepub.TraceFileExtension) {
			return nil
		}

		dir := filepath.Base(filepath.Dir(path))
		if !strings.HasPrefix(dir, tracepub.ResultsDirPrefix) {
			return nil
		}

		files = append(files, TraceFile{
			Path:         path,
			Filename:     info.Name(),
			MachineLabel: strings.TrimPrefix(dir, tracepub.ResultsDirPrefix),
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "problem scanning results tree '%s'", root)
	}

	return files, nil
}
