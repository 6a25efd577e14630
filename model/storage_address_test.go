package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBatch() RunBatch {
	return NewRunBatch("binius", "main", "0123456789abcdef", time.Unix(1700000000, 0))
}

func TestRunBatch(t *testing.T) {
	t.Run("TruncatesCommitHash", func(t *testing.T) {
		assert.Equal(t, "012345678", testBatch().Commit)
	})
	t.Run("KeepsShortCommitHash", func(t *testing.T) {
		batch := NewRunBatch("binius", "main", "abc", time.Unix(1700000000, 0))
		assert.Equal(t, "abc", batch.Commit)
	})
	t.Run("SanitizesBranchSlashes", func(t *testing.T) {
		batch := NewRunBatch("binius", "feature/fast/keccak", "0123456789abcdef", time.Unix(1700000000, 0))
		assert.Equal(t, "feature-fast-keccak", batch.Branch)
	})
	t.Run("TruncatesTimestampToSeconds", func(t *testing.T) {
		batch := NewRunBatch("binius", "main", "0123456789abcdef", time.Unix(1700000000, 999999999))
		assert.Equal(t, "1700000000-012345678", batch.Directory())
	})
}

func TestBuildStorageAddress(t *testing.T) {
	parsed := ParsedTrace{Benchmark: "keccakf", Mode: "single", RunID: "001"}
	filename := "keccakf-single-thread-001-trace.perfetto-trace"

	t.Run("ComposesFullKey", func(t *testing.T) {
		addr := BuildStorageAddress(parsed, "c7a-2xlarge", filename, testBatch())
		assert.Equal(t, StorageAddress(
			"binius/main/keccakf/single-thread/c7a-2xlarge/1700000000-012345678/c7a-2xlarge-"+filename,
		), addr)
	})
	t.Run("IsDeterministic", func(t *testing.T) {
		first := BuildStorageAddress(parsed, "c7a-2xlarge", filename, testBatch())
		second := BuildStorageAddress(parsed, "c7a-2xlarge", filename, testBatch())
		assert.Equal(t, first, second)
	})
	t.Run("DistinctTuplesYieldDistinctAddresses", func(t *testing.T) {
		batch := testBatch()
		seen := map[StorageAddress]bool{}

		for _, machine := range []string{"c7a-2xlarge", "m7g-4xlarge"} {
			for _, name := range []string{
				"keccakf-single-thread-001-trace.perfetto-trace",
				"keccakf-single-thread-002-trace.perfetto-trace",
				"keccakf-multi-thread-001-trace.perfetto-trace",
				"prodcheck-single-thread-001-trace.perfetto-trace",
			} {
				p, err := ParseTraceFilename(name)
				require.NoError(t, err)

				addr := BuildStorageAddress(p, machine, name, batch)
				assert.False(t, seen[addr], "collision at '%s'", addr)
				seen[addr] = true
			}
		}
	})
	t.Run("SameFilenameOnDifferentMachinesDiffers", func(t *testing.T) {
		batch := testBatch()
		first := BuildStorageAddress(parsed, "c7a-2xlarge", filename, batch)
		second := BuildStorageAddress(parsed, "m7g-4xlarge", filename, batch)
		assert.NotEqual(t, first, second)
	})
}
