package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burggraaff/pcse/version"
)

func TestRun0Version(t *testing.T) {
	// No t.Parallel: the test redirects os.Stdout to capture the version
	// line.
	prev := os.Stdout

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w
	code := run0([]string{"-version"})
	os.Stdout = prev

	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.Equal(t, 0, code)
	assert.Equal(t, version.String()+"\n", string(out))
}

func TestRun0Usage(t *testing.T) {
	// No t.Parallel: run0 replaces the process-wide slog default before
	// reading the file.
	prev := slog.Default()
	defer slog.SetDefault(prev)

	tcs := map[string]struct {
		args []string
		want int
	}{
		"no arguments":   {args: nil, want: 1},
		"too many files": {args: []string{"a.cab", "b.cab"}, want: 1},
		"unknown flag":   {args: []string{"-bogus"}, want: 2},
		"missing file":   {args: []string{filepath.Join(t.TempDir(), "missing.cab")}, want: 1},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, run0(tc.args))
		})
	}
}
