// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eyovvalupe/pump.fun-Raydium/consts"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		amount uint64
		bps    uint16
		net    uint64
		fee    uint64
		err    error
	}{
		{name: "one percent", amount: 10_000, bps: 100, net: 9_900, fee: 100},
		{name: "truncated fee", amount: 2, bps: 100, net: 2, fee: 0},
		{name: "zero fee", amount: 12_345, bps: 0, net: 12_345, fee: 0},
		{name: "max fee", amount: 10_000, bps: 9_999, net: 1, fee: 9_999},
		{name: "max amount", amount: consts.MaxUint64, bps: 100, net: consts.MaxUint64 - consts.MaxUint64/100, fee: consts.MaxUint64 / 100},
		{name: "full fee rejected", amount: 10_000, bps: 10_000, err: ErrInvalidFee},
		{name: "above full fee rejected", amount: 10_000, bps: 20_000, err: ErrInvalidFee},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			net, fee, err := Split(tt.amount, tt.bps)
			require.ErrorIs(err, tt.err)
			if tt.err != nil {
				return
			}
			require.Equal(tt.net, net)
			require.Equal(tt.fee, fee)
			require.Equal(tt.amount, net+fee)
		})
	}
}
