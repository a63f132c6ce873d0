// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eyovvalupe/pump.fun-Raydium/chain/chaintest"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
	"github.com/eyovvalupe/pump.fun-Raydium/storage"
)

func TestCreateMint(t *testing.T) {
	mu := state.MutableStorage{}

	tests := []chaintest.ActionTest{
		{
			Name:        "empty name",
			Action:      &CreateMint{Symbol: testSymbol},
			Rules:       testRules(),
			State:       mu,
			Actor:       creator,
			ExpectedErr: ErrNameEmpty,
		},
		{
			Name:        "name too large",
			Action:      &CreateMint{Name: strings.Repeat("a", storage.MaxNameSize+1), Symbol: testSymbol},
			Rules:       testRules(),
			State:       mu,
			Actor:       creator,
			ExpectedErr: ErrNameTooLarge,
		},
		{
			Name:        "empty symbol",
			Action:      &CreateMint{Name: testName},
			Rules:       testRules(),
			State:       mu,
			Actor:       creator,
			ExpectedErr: ErrSymbolEmpty,
		},
		{
			Name:        "symbol too large",
			Action:      &CreateMint{Name: testName, Symbol: strings.Repeat("A", storage.MaxSymbolSize+1)},
			Rules:       testRules(),
			State:       mu,
			Actor:       creator,
			ExpectedErr: ErrSymbolTooLarge,
		},
		{
			Name:        "uri too large",
			Action:      &CreateMint{Name: testName, Symbol: testSymbol, URI: strings.Repeat("u", storage.MaxURISize+1)},
			Rules:       testRules(),
			State:       mu,
			Actor:       creator,
			ExpectedErr: ErrURITooLarge,
		},
		{
			Name:            "create mint",
			Action:          &CreateMint{Name: testName, Symbol: testSymbol, URI: testURI},
			Rules:           testRules(),
			State:           mu,
			Actor:           creator,
			ExpectedOutputs: &CreateMintResult{Mint: mintAddr},
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				mint, err := storage.GetMint(ctx, mu, mintAddr)
				require.NoError(err)
				require.Equal(&storage.Mint{
					Name:     testName,
					Symbol:   testSymbol,
					URI:      testURI,
					Decimals: consts.TokenDecimals,
					Creator:  creator,
					Supply:   consts.TotalSupply,
				}, mint)
				require.Equal(consts.TotalSupply, balance(t, mu, mintAddr, creator))
			},
		},
		{
			Name:        "issuance is closed",
			Action:      &CreateMint{Name: "Another", Symbol: testSymbol},
			Rules:       testRules(),
			State:       mu,
			Actor:       creator,
			ExpectedErr: ErrMintAlreadyExists,
			Assertion: func(_ context.Context, t *testing.T, mu state.Mutable) {
				require.Equal(t, consts.TotalSupply, balance(t, mu, mintAddr, creator))
			},
		},
	}

	for _, tt := range tests {
		tt.Run(context.Background(), t)
	}
}
