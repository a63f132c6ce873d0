// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"

	"github.com/eyovvalupe/pump.fun-Raydium/chain"
	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/genesis"
	"github.com/eyovvalupe/pump.fun-Raydium/ledger"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
	"github.com/eyovvalupe/pump.fun-Raydium/storage"
)

const (
	testSymbol = "CURVE"
	testName   = "Curve Token"
	testURI    = "https://example.com/curve.json"
)

var (
	creator  = codec.CreateAddress(consts.AccountID, ids.GenerateTestID())
	trader   = codec.CreateAddress(consts.AccountID, ids.GenerateTestID())
	treasury = codec.CreateAddress(consts.AccountID, ids.GenerateTestID())

	ammID     = ids.GenerateTestID()
	ammAddr   = storage.AmmAddress(ammID)
	mintAddr  = storage.MintAddress(creator, testSymbol)
	authority = storage.AuthorityAddress(ammAddr, mintAddr)
)

func testRules() *genesis.Rules {
	rules := genesis.NewDefaultRules()
	rules.Treasury = treasury
	return rules
}

// setupPool creates a mint, an Amm with a 1% fee and their pool, then moves
// [custody] of the supply into the pool.
func setupPool(t *testing.T, rules chain.Rules, custody uint64) state.MutableStorage {
	require := require.New(t)
	ctx := context.Background()
	mu := state.MutableStorage{}

	setupActions := []chain.Action{
		&CreateMint{Name: testName, Symbol: testSymbol, URI: testURI},
		&CreateAmm{ID: ammID, Fee: consts.DefaultFee},
		&CreatePool{Amm: ammAddr, Mint: mintAddr},
	}
	if custody > 0 {
		setupActions = append(setupActions, &Deposit{Amm: ammAddr, Mint: mintAddr, Amount: custody})
	}
	for _, action := range setupActions {
		_, err := action.Execute(ctx, rules, ledger.StateLedger{}, mu, creator)
		require.NoError(err)
	}
	return mu
}

func fund(t *testing.T, mu state.Mutable, to codec.Address, amount uint64) {
	require.NoError(t, ledger.Credit(context.Background(), mu, storage.NativeAsset, to, amount))
}

func balance(t *testing.T, im state.Immutable, asset codec.Address, owner codec.Address) uint64 {
	bal, err := storage.GetBalance(context.Background(), im, asset, owner)
	require.NoError(t, err)
	return bal
}

func snapshot(mu state.MutableStorage) state.MutableStorage {
	return maps.Clone(mu)
}
