package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "plots.txt")
	corpus := "The dragon attacks the king.\nA king's dragon!\nThe queen loves the king.\n"
	require.NoError(t, os.WriteFile(path, []byte(corpus), 0o644))
	return path
}

func TestRun_Terminal(t *testing.T) {
	req := require.New(t)
	t.Setenv("FREQ_CORPUS", writeCorpus(t))
	t.Setenv("FREQ_TERMS", "2")
	t.Setenv("FREQ_OUTPUT", "")
	t.Setenv("LOG_LEVEL", "ERROR")

	var out bytes.Buffer
	req.NoError(run(&out))
	req.Contains(out.String(), "king")
	req.Contains(out.String(), "dragon")
	req.NotContains(out.String(), "queen")
}

func TestRun_PDF(t *testing.T) {
	req := require.New(t)
	output := filepath.Join(t.TempDir(), "chart.pdf")
	t.Setenv("FREQ_CORPUS", writeCorpus(t))
	t.Setenv("FREQ_OUTPUT", output)
	t.Setenv("FREQ_LARGEST", "false")
	t.Setenv("LOG_LEVEL", "ERROR")

	req.NoError(run(&bytes.Buffer{}))
	data, err := os.ReadFile(output)
	req.NoError(err)
	req.True(bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRun_MissingCorpus(t *testing.T) {
	t.Setenv("FREQ_CORPUS", filepath.Join(t.TempDir(), "none.txt"))
	t.Setenv("LOG_LEVEL", "ERROR")
	require.Error(t, run(&bytes.Buffer{}))
}
