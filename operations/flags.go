package operations

import (
	"strings"

	"github.com/urfave/cli"
)

////////////////////////////////////////////////////////////////////////
//
// Flag Name Constants

const (
	configFlagName  = "config"
	resultsFlagName = "results"
	summaryFlagName = "summary"

	repoFlagName   = "repo"
	branchFlagName = "branch"
	commitFlagName = "commit"

	numWorkersFlag  = "workers"
	bucketNameFlag  = "bucket"
	storageFlagName = "storage"
)

////////////////////////////////////////////////////////////////////////
//
// Utility Functions

func joinFlagNames(ids ...string) string { return strings.Join(ids, ", ") }

func mergeFlags(in ...[]cli.Flag) []cli.Flag {
	out := []cli.Flag{}

	for idx := range in {
		out = append(out, in[idx]...)
	}

	return out
}

////////////////////////////////////////////////////////////////////////
//
// Flag Groups

func configFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags, cli.StringFlag{
		Name:   joinFlagNames(configFlagName, "f"),
		Usage:  "path to a tracepub publisher configuration file",
		EnvVar: "TRACEPUB_CONFIG_FILE",
	})
}

func resultsFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags,
		cli.StringFlag{
			Name:   resultsFlagName,
			Usage:  "root of the downloaded benchmark results tree",
			EnvVar: "TRACEPUB_RESULTS_DIR",
		},
		cli.StringFlag{
			Name:   joinFlagNames(summaryFlagName, "o"),
			Usage:  "append-only report sink for the rendered summary ('-' for stdout)",
			EnvVar: "TRACEPUB_SUMMARY_FILE",
		})
}

func batchFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags,
		cli.StringFlag{
			Name:   repoFlagName,
			Usage:  "name of the repository the benchmarks ran against",
			EnvVar: "TRACEPUB_REPO_NAME",
		},
		cli.StringFlag{
			Name:   branchFlagName,
			Usage:  "branch the benchmarks ran against",
			EnvVar: "TRACEPUB_BRANCH",
		},
		cli.StringFlag{
			Name:   commitFlagName,
			Usage:  "commit hash the benchmarks ran against",
			EnvVar: "TRACEPUB_COMMIT_HASH",
		})
}

func baseFlags(flags ...cli.Flag) []cli.Flag {
	return append(flags,
		cli.IntFlag{
			Name:  numWorkersFlag,
			Usage: "specify the number of parallel upload workers",
			Value: 4,
		},
		cli.StringFlag{
			Name:   bucketNameFlag,
			Usage:  "specify a bucket name to use for storing traces in s3",
			EnvVar: "TRACEPUB_BUCKET_NAME",
		},
		cli.StringFlag{
			Name:  storageFlagName,
			Usage: "storage backend for traces: 's3' or 'local'",
		})
}
