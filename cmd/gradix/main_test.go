package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	vals := parseParams([]string{"strength=0.5", "phase=3.14"})
	require.Equal(t, 0.5, vals["strength"])
	require.Equal(t, 3.14, vals["phase"])
	require.Empty(t, parseParams(nil))
}

func TestParseWeights(t *testing.T) {
	require.Equal(t, []float64{1, 1, 1}, parseWeights("", 3))
	require.Equal(t, []float64{2, 0.5}, parseWeights("2, 0.5", 2))
}

func TestSafeFileName(t *testing.T) {
	require.Equal(t, "merged_gradient_(mix)", safeFileName("Merged Gradient (Mix)"))
	require.Equal(t, "a_b", safeFileName("a/b"))
}
