// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run1(t *testing.T, args ...string) (status int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	status = benchchart(context.Background(), &out, &errOut, args)
	return status, out.String(), errOut.String()
}

func reportDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(data), 0666))
	}
	return dir
}

func TestCharts(t *testing.T) {
	dir := reportDir(t, map[string]string{
		"results_home.csv": "rps,p95\n100,20\n120,22\n",
		"results_blog.csv": "rps,p95\n80,40\n",
	})
	status, stdout, stderr := run1(t, "--width", "10.16", "--height", "7.62", "--dpi", "50", dir)
	require.Equal(t, 0, status, stderr)
	assert.Equal(t,
		"Created rps_comparison.png in "+dir+"\n"+
			"Created latency_comparison.png in "+dir+"\n",
		stdout)

	for _, name := range []string{"rps_comparison.png", "latency_comparison.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.InDelta(t, 200, cfg.Width, 1)
		assert.InDelta(t, 150, cfg.Height, 1)
	}
}

func TestNoCSVFiles(t *testing.T) {
	dir := t.TempDir()
	status, stdout, _ := run1(t, dir)
	assert.Equal(t, 0, status)
	assert.Equal(t, "No CSV files found in "+dir+"\n", stdout)

	dir = reportDir(t, map[string]string{"results_empty.csv": "rps,p95\n"})
	status, stdout, _ = run1(t, dir)
	assert.Equal(t, 0, status)
	assert.Equal(t, "No CSV files found in "+dir+"\n", stdout)
	_, err := os.Stat(filepath.Join(dir, "rps_comparison.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestMissingColumn(t *testing.T) {
	dir := reportDir(t, map[string]string{"results_bad.csv": "rps,latency\n1,2\n"})
	status, stdout, stderr := run1(t, dir)
	assert.Equal(t, 1, status)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "results_bad.csv: missing column p95")
}

func TestUsage(t *testing.T) {
	check := func(want string, args ...string) {
		t.Helper()
		status, stdout, stderr := run1(t, args...)
		assert.Equal(t, 2, status)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, want)
		assert.Contains(t, stderr, "Usage:")
	}
	check("accepts 1 arg(s), received 0")
	check("accepts 1 arg(s), received 2", "a", "b")
	check("must be positive", "--dpi", "0", t.TempDir())
	check("unknown flag", "--color", "red", t.TempDir())
}

func TestNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "results_x.csv")
	require.NoError(t, os.WriteFile(file, []byte("rps,p95\n1,2\n"), 0666))
	status, _, stderr := run1(t, file)
	assert.Equal(t, 1, status)
	assert.Contains(t, stderr, "is not a directory")

	status, _, _ = run1(t, filepath.Join(t.TempDir(), "missing"))
	assert.Equal(t, 1, status)
}
