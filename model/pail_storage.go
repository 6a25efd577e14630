package model

import (
	"context"

	"github.com/benchwatch/tracepub"
	"github.com/evergreen-ci/pail"
	"github.com/evergreen-ci/utility"
	"github.com/pkg/errors"
)

// PailType describes the name of the blob storage backing a pail Bucket
// implementation.
type PailType string

const (
	PailS3    PailType = "s3"
	PailLocal PailType = "local"

	defaultS3Region = "us-east-1"
	s3MaxRetries    = 10
)

func s3Options(conf *tracepub.PublisherConfig) pail.S3Options {
	region := conf.AWSRegion
	if region == "" {
		region = defaultS3Region
	}

	opts := pail.S3Options{
		Name:        conf.BucketName,
		Region:      region,
		Permissions: pail.S3PermissionsPublicRead,
		MaxRetries:  utility.ToIntPtr(s3MaxRetries),
	}
	if conf.AWSKey != "" {
		opts.Credentials = pail.CreateAWSCredentials(conf.AWSKey, conf.AWSSecret, "")
	}

	return opts
}

// Create returns a pail Bucket backed by PailType, checked for
// reachability.
func (t PailType) Create(ctx context.Context, conf *tracepub.PublisherConfig) (pail.Bucket, error) {
	var b pail.Bucket
	var err error

	switch t {
	case PailS3:
		b, err = pail.NewS3Bucket(ctx, s3Options(conf))
		if err != nil {
			return nil, errors.WithStack(err)
		}
	case PailLocal:
		opts := pail.LocalOptions{
			Path: conf.LocalBucketPath,
		}
		b, err = pail.NewLocalBucket(opts)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	default:
		return nil, errors.Errorf("storage type '%s' is not implemented", t)
	}

	if err = b.Check(ctx); err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}
