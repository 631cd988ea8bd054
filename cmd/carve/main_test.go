package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSet(t *testing.T) {
	parse := func(args ...string) *flag.FlagSet {
		fs := flag.NewFlagSet("carve", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.Int64("seed", 0, "")
		fs.Int("width", 16, "")
		require.NoError(t, fs.Parse(args))
		return fs
	}

	t.Run("Explicit zero seed counts as given", func(t *testing.T) {
		assert.True(t, isSet(parse("-seed", "0"), "seed"))
	})

	t.Run("Default seed is not given", func(t *testing.T) {
		fs := parse("-width", "8")
		assert.False(t, isSet(fs, "seed"))
		assert.True(t, isSet(fs, "width"))
	})
}
