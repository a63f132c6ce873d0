// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		bal      uint64
		decimals uint8
		expected string
	}{
		{0, 9, "0.000000000"},
		{1, 9, "0.000000001"},
		{1_000_000_000, 9, "1.000000000"},
		{24_500_000_000, 9, "24.500000000"},
		{123, 0, "123"},
		{1_000_000, 6, "1.000000"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, FormatBalance(tt.bal, tt.decimals))
	}
}

func TestParseBalance(t *testing.T) {
	require := require.New(t)

	v, err := ParseBalance("24.5", 9)
	require.NoError(err)
	require.Equal(uint64(24_500_000_000), v)

	v, err = ParseBalance("1", 6)
	require.NoError(err)
	require.Equal(uint64(1_000_000), v)

	v, err = ParseBalance(".000001", 6)
	require.NoError(err)
	require.Equal(uint64(1), v)

	v, err = ParseBalance(FormatBalance(987654321, 9), 9)
	require.NoError(err)
	require.Equal(uint64(987654321), v)

	for _, bad := range []string{"", ".", "1.0000001", "-1", "abc", "99999999999999999999"} {
		_, err = ParseBalance(bad, 6)
		require.ErrorIs(err, ErrInvalidBalance, bad)
	}
}

func TestToID(t *testing.T) {
	require := require.New(t)
	require.Equal(ToID([]byte("a")), ToID([]byte("a")))
	require.NotEqual(ToID([]byte("a")), ToID([]byte("b")))
}
