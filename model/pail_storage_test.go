package model

import (
	"context"
	"testing"

	"github.com/benchwatch/tracepub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPailTypeCreate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t.Run("LocalBucket", func(t *testing.T) {
		conf := &tracepub.PublisherConfig{LocalBucketPath: t.TempDir()}
		bucket, err := PailLocal.Create(ctx, conf)
		require.NoError(t, err)
		assert.NotNil(t, bucket)
	})
	t.Run("UnknownTypeErrors", func(t *testing.T) {
		bucket, err := PailType("gridfs").Create(ctx, &tracepub.PublisherConfig{})
		assert.Error(t, err)
		assert.Nil(t, bucket)
	})
}

func TestS3Options(t *testing.T) {
	t.Run("SetsRetriesAndDefaultRegion", func(t *testing.T) {
		opts := s3Options(&tracepub.PublisherConfig{BucketName: "benchmark-traces"})
		assert.Equal(t, "benchmark-traces", opts.Name)
		assert.Equal(t, defaultS3Region, opts.Region)
		require.NotNil(t, opts.MaxRetries)
		assert.Equal(t, s3MaxRetries, *opts.MaxRetries)
		assert.Nil(t, opts.Credentials)
	})
	t.Run("UsesConfiguredRegionAndCredentials", func(t *testing.T) {
		opts := s3Options(&tracepub.PublisherConfig{
			BucketName: "benchmark-traces",
			AWSRegion:  "eu-west-1",
			AWSKey:     "key",
			AWSSecret:  "secret",
		})
		assert.Equal(t, "eu-west-1", opts.Region)
		assert.NotNil(t, opts.Credentials)
	})
}
