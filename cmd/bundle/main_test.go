package main

import (
	"path/filepath"
	"testing"

	"genre-lab/errors"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	req := require.New(t)
	dbPath := filepath.Join(t.TempDir(), "bundles")

	req.NoError(run(dbPath, "../../model/testdata/demo", "ERROR"))

	err := run(dbPath, t.TempDir(), "ERROR")
	req.ErrorIs(err, errors.ErrArtifactLoad)
}
