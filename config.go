package tracepub

import (
	"fmt"
	"strings"

	"github.com/benchwatch/tracepub/util"
	"github.com/mongodb/grip"
	"github.com/pkg/errors"
)

const (
	defaultViewerBaseURL    = "https://ui.perfetto.dev/#!/"
	defaultViewerQueryParam = "url"
	defaultStorageType      = "s3"
	defaultNumWorkers       = 4
)

// PublisherConfig defines the inputs of one publishing run: where the
// results tree lives, which bucket receives the traces, how public trace
// URLs and viewer links are formed, and the repository/branch/commit
// identity that scopes the storage addresses.
type PublisherConfig struct {
	BucketName  string `yaml:"bucket_name"`
	AWSRegion   string `yaml:"aws_region"`
	AWSKey      string `yaml:"aws_key"`
	AWSSecret   string `yaml:"aws_secret"`
	StorageType string `yaml:"storage_type"`

	// LocalBucketPath backs the "local" storage type, used for dry runs
	// and tests.
	LocalBucketPath string `yaml:"local_bucket_path"`

	// PublicBaseURL is the prefix under which uploaded keys are publicly
	// fetchable; viewer links embed URLs formed from it.
	PublicBaseURL string `yaml:"public_base_url"`

	ViewerBaseURL    string `yaml:"viewer_base_url"`
	ViewerQueryParam string `yaml:"viewer_query_param"`

	RepoName   string `yaml:"repo_name"`
	Branch     string `yaml:"branch"`
	CommitHash string `yaml:"commit_hash"`

	ResultsDir  string `yaml:"results_dir"`
	SummaryPath string `yaml:"summary_path"`
	NumWorkers  int    `yaml:"num_workers"`
	DryRun      bool   `yaml:"dry_run"`
}

// LoadPublisherConfig reads a YAML publisher configuration from a file.
// Flag and environment overrides are applied by the caller before
// Validate runs.
func LoadPublisherConfig(path string) (*PublisherConfig, error) {
	conf := &PublisherConfig{}

	if err := util.ReadFileYAML(path, conf); err != nil {
		return nil, errors.Wrap(err, "problem loading publisher config")
	}

	return conf, nil
}

// Validate checks required fields and fills defaults in place.
func (c *PublisherConfig) Validate() error {
	catcher := grip.NewBasicCatcher()

	if c.RepoName == "" {
		catcher.Add(errors.New("must specify a repository name"))
	}
	if c.Branch == "" {
		catcher.Add(errors.New("must specify a branch name"))
	}
	if c.CommitHash == "" {
		catcher.Add(errors.New("must specify a commit hash"))
	}
	if c.ResultsDir == "" {
		catcher.Add(errors.New("must specify a results directory"))
	}
	if c.SummaryPath == "" {
		catcher.Add(errors.New("must specify a summary destination"))
	}

	if c.StorageType == "" {
		c.StorageType = defaultStorageType
	}
	switch c.StorageType {
	case "s3":
		if c.BucketName == "" {
			catcher.Add(errors.New("must specify a bucket name"))
		}
	case "local":
		if c.LocalBucketPath == "" {
			catcher.Add(errors.New("must specify a local bucket path"))
		}
	default:
		catcher.Add(errors.Errorf("unsupported storage type '%s'", c.StorageType))
	}

	if c.PublicBaseURL == "" && c.BucketName != "" {
		c.PublicBaseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", c.BucketName)
	}
	c.PublicBaseURL = strings.TrimSuffix(c.PublicBaseURL, "/")

	if c.ViewerBaseURL == "" {
		c.ViewerBaseURL = defaultViewerBaseURL
	}
	if c.ViewerQueryParam == "" {
		c.ViewerQueryParam = defaultViewerQueryParam
	}
	if c.NumWorkers < 1 {
		c.NumWorkers = defaultNumWorkers
	}

	return catcher.Resolve()
}
