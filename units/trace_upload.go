package units

import (
	"context"
	"fmt"

	"github.com/evergreen-ci/pail"
	"github.com/mongodb/amboy"
	"github.com/mongodb/amboy/dependency"
	"github.com/mongodb/amboy/job"
	"github.com/mongodb/amboy/registry"
	"github.com/mongodb/grip"
	"github.com/mongodb/grip/message"
	"github.com/pkg/errors"
)

const traceUploadJobName = "trace-upload"

type traceUploadJob struct {
	Path string `bson:"path" json:"path" yaml:"path"`
	Key  string `bson:"key" json:"key" yaml:"key"`

	job.Base `bson:"metadata" json:"metadata" yaml:"metadata"`
	bucket   pail.Bucket
}

func init() {
	registry.AddJobType(traceUploadJobName, func() amboy.Job { return makeTraceUploadJob() })
}

func makeTraceUploadJob() *traceUploadJob {
	j := &traceUploadJob{
		Base: job.Base{
			JobType: amboy.JobType{
				Name:    traceUploadJobName,
				Version: 1,
			},
		},
	}

	j.SetDependency(dependency.NewAlways())
	return j
}

// NewTraceUploadJob returns a job that copies the local file at path to
// the bucket under key. Uploads are idempotent: re-running with the same
// key overwrites the same object, so retrying a failed batch is safe.
func NewTraceUploadJob(bucket pail.Bucket, path, key string) amboy.Job {
	j := makeTraceUploadJob()
	j.bucket = bucket
	j.Path = path
	j.Key = key
	j.SetID(fmt.Sprintf("%s.%d.%s", traceUploadJobName, job.GetNumber(), key))
	return j
}

func (j *traceUploadJob) validate() error {
	if j.bucket == nil {
		return errors.New("no bucket given")
	}

	if j.Path == "" {
		return errors.New("no local path given")
	}

	if j.Key == "" {
		return errors.New("no storage key given")
	}

	return nil
}

func (j *traceUploadJob) Run(ctx context.Context) {
	defer j.MarkComplete()

	if err := j.validate(); err != nil {
		j.AddError(errors.WithStack(err))
		return
	}

	if err := j.bucket.Upload(ctx, j.Key, j.Path); err != nil {
		j.AddError(errors.Wrapf(err, "problem uploading '%s' to '%s'", j.Path, j.Key))
		return
	}

	grip.Info(message.Fields{
		"job":  j.ID(),
		"path": j.Path,
		"key":  j.Key,
	})
}
