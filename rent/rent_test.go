// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinimumBalance(t *testing.T) {
	require := require.New(t)

	require.Equal(uint64(1_224_960), Default.MinimumBalance(AuthorityDataLen))
	require.Equal(uint64(890_880), Default.MinimumBalance(0))
	require.Zero(Free{}.MinimumBalance(AuthorityDataLen))
}
