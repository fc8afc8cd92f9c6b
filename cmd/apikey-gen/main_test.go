package main

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateRandomHex(t *testing.T) {
	out, err := generateRandomHex(32)
	require.NoError(t, err)
	require.Len(t, out, 32)

	_, err = hex.DecodeString(out)
	require.NoError(t, err)
}

func TestGenerateRandomHex_Distinct(t *testing.T) {
	a, err := generateRandomHex(32)
	require.NoError(t, err)
	b, err := generateRandomHex(32)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
