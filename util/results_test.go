package util

import (
	"github.com/stretchr/testify/assert"
	"os"
	"path/filepath"
	"testing"
)

func TestResultsRoundTrip(t *testing.T) {
	root := t.TempDir()
	runPath := filepath.Join(root, "bench_1")
	assert.NoError(t, os.MkdirAll(runPath, os.ModePerm))
	assert.NoError(t, WriteResultsId("bench_1", runPath, map[string]string{"strategy": "array"}))

	rid, err := ReadResultsId(filepath.Join(runPath, ResultsIdFilename))
	assert.NoError(t, err)
	assert.Equal(t, "bench_1", rid.Id)
	assert.Equal(t, "array", rid.Values["strategy"])

	discovered, err := DiscoverResults(root)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(discovered))
	assert.Equal(t, "bench_1", discovered[runPath].Id)
}

func TestDiscoverResultsEmpty(t *testing.T) {
	discovered, err := DiscoverResults(t.TempDir())
	assert.NoError(t, err)
	assert.Equal(t, 0, len(discovered))
}
