package operations

import (
	"context"

	"github.com/benchwatch/tracepub"
	"github.com/benchwatch/tracepub/model"
	"github.com/benchwatch/tracepub/publisher"
	"github.com/mongodb/grip"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// Publish returns the ./tracepub publish command, which uploads one
// batch of benchmark trace files to object storage and appends a
// grouped index of viewer links to the report sink.
func Publish() cli.Command {
	return cli.Command{
		Name:   "publish",
		Usage:  "upload a batch of benchmark traces and append a grouped viewer-link summary",
		Flags:  mergeFlags(baseFlags(), configFlags(), resultsFlags(), batchFlags()),
		Before: mergeBeforeFuncs(
			requirePathExistsWhenSet(resultsFlagName),
			requirePathExistsWhenSet(configFlagName),
		),
		Action: func(c *cli.Context) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			conf, err := loadConfiguration(c)
			if err != nil {
				return errors.WithStack(err)
			}

			env := tracepub.GetEnvironment()
			if err := env.Configure(conf); err != nil {
				return errors.Wrap(err, "problem configuring environment")
			}

			q, err := env.GetQueue()
			if err != nil {
				return errors.WithStack(err)
			}
			if err := q.Start(ctx); err != nil {
				return errors.Wrap(err, "problem starting queue")
			}

			bucket, err := model.PailType(conf.StorageType).Create(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "problem constructing bucket")
			}

			grip.Infof("publishing traces from '%s' to bucket '%s'", conf.ResultsDir, conf.BucketName)

			return errors.WithStack(publisher.NewPipeline(conf, bucket, q).Run(ctx))
		},
	}
}

// Check returns the ./tracepub check command: a dry run that parses the
// results tree and prints the summary that publish would emit, without
// uploading anything. Useful when debugging filename conventions.
func Check() cli.Command {
	return cli.Command{
		Name:   "check",
		Usage:  "parse a results tree and render the summary without uploading",
		Flags:  mergeFlags(baseFlags(), configFlags(), resultsFlags(), batchFlags()),
		Before: mergeBeforeFuncs(
			requirePathExistsWhenSet(resultsFlagName),
			requirePathExistsWhenSet(configFlagName),
		),
		Action: func(c *cli.Context) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			conf, err := loadConfiguration(c)
			if err != nil {
				return errors.WithStack(err)
			}
			conf.DryRun = true
			if conf.SummaryPath == "" {
				conf.SummaryPath = "-"
			}

			env := tracepub.GetEnvironment()
			if err := env.Configure(conf); err != nil {
				return errors.Wrap(err, "problem configuring environment")
			}

			return errors.WithStack(publisher.NewPipeline(conf, nil, nil).Run(ctx))
		},
	}
}

// loadConfiguration reads the config file named by the config flag, if
// any, and layers flag and environment overrides on top.
func loadConfiguration(c *cli.Context) (*tracepub.PublisherConfig, error) {
	conf := &tracepub.PublisherConfig{}

	if path := c.String(configFlagName); path != "" {
		var err error
		conf, err = tracepub.LoadPublisherConfig(path)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if v := c.String(bucketNameFlag); v != "" {
		conf.BucketName = v
	}
	if v := c.String(storageFlagName); v != "" {
		conf.StorageType = v
	}
	if v := c.String(resultsFlagName); v != "" {
		conf.ResultsDir = v
	}
	if v := c.String(summaryFlagName); v != "" {
		conf.SummaryPath = v
	}
	if v := c.String(repoFlagName); v != "" {
		conf.RepoName = v
	}
	if v := c.String(branchFlagName); v != "" {
		conf.Branch = v
	}
	if v := c.String(commitFlagName); v != "" {
		conf.CommitHash = v
	}
	if c.IsSet(numWorkersFlag) || conf.NumWorkers == 0 {
		conf.NumWorkers = c.Int(numWorkersFlag)
	}

	return conf, nil
}
