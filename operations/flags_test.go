package operations

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

func TestFlagHelpers(t *testing.T) {
	t.Run("JoinFlagNames", func(t *testing.T) {
		assert.Equal(t, "config, f", joinFlagNames(configFlagName, "f"))
	})
	t.Run("MergeFlags", func(t *testing.T) {
		merged := mergeFlags(baseFlags(), configFlags(), resultsFlags(), batchFlags())
		assert.Len(t, merged, len(baseFlags())+len(configFlags())+len(resultsFlags())+len(batchFlags()))
	})
	t.Run("FlagGroupsAppendToInput", func(t *testing.T) {
		seed := []cli.Flag{cli.BoolFlag{Name: "verbose"}}
		out := baseFlags(seed...)
		require.True(t, len(out) > 1)
		assert.Equal(t, "verbose", out[0].GetName())
	})
}

func TestBeforeValidators(t *testing.T) {
	makeContext := func(t *testing.T, value string) *cli.Context {
		set := flag.NewFlagSet("test", flag.ContinueOnError)
		set.String(resultsFlagName, "", "")
		if value != "" {
			require.NoError(t, set.Set(resultsFlagName, value))
		}
		return cli.NewContext(nil, set, nil)
	}

	t.Run("PassesWhenUnset", func(t *testing.T) {
		assert.NoError(t, requirePathExistsWhenSet(resultsFlagName)(makeContext(t, "")))
	})
	t.Run("PassesWhenPathExists", func(t *testing.T) {
		assert.NoError(t, requirePathExistsWhenSet(resultsFlagName)(makeContext(t, t.TempDir())))
	})
	t.Run("FailsOnMissingPath", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "nope")
		err := requirePathExistsWhenSet(resultsFlagName)(makeContext(t, missing))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})
	t.Run("MergeBeforeFuncsCollectsErrors", func(t *testing.T) {
		called := 0
		pass := func(c *cli.Context) error { called++; return nil }
		fail := func(c *cli.Context) error { called++; return errors.New("bad flag") }

		err := mergeBeforeFuncs(pass, fail, pass)(makeContext(t, ""))
		require.Error(t, err)
		assert.Equal(t, 3, called)
		assert.Contains(t, err.Error(), "bad flag")
	})
}

func TestCommandConstruction(t *testing.T) {
	for _, cmd := range []cli.Command{Publish(), Check()} {
		assert.NotEmpty(t, cmd.Name)
		assert.NotEmpty(t, cmd.Usage)
		assert.NotNil(t, cmd.Action)
		assert.NotNil(t, cmd.Before)
		assert.NotEmpty(t, cmd.Flags)
	}
}
