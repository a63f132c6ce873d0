// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package graduation

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/fixedpoint"
	"github.com/eyovvalupe/pump.fun-Raydium/ledger"
	"github.com/eyovvalupe/pump.fun-Raydium/rent"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
	"github.com/eyovvalupe/pump.fun-Raydium/storage"
)

var (
	creator  = codec.CreateAddress(consts.AccountID, ids.GenerateTestID())
	treasury = codec.CreateAddress(consts.AccountID, ids.GenerateTestID())
	mintAddr = storage.MintAddress(creator, "CURVE")
	ammAddr  = storage.AmmAddress(ids.GenerateTestID())
)

func setup(t *testing.T, asset uint64, currency uint64) (state.MutableStorage, *storage.Amm, *storage.Pool) {
	require := require.New(t)
	ctx := context.Background()
	mu := state.MutableStorage{}

	amm := &storage.Amm{ID: ammAddr, Fee: consts.DefaultFee, Status: storage.Active}
	pool := &storage.Pool{Amm: ammAddr, Mint: mintAddr}
	require.NoError(storage.SetAmm(ctx, mu, amm))
	require.NoError(storage.SetPool(ctx, mu, pool))
	require.NoError(storage.SetMint(ctx, mu, mintAddr, &storage.Mint{
		Name:     "Curve",
		Symbol:   "CURVE",
		Decimals: consts.TokenDecimals,
		Creator:  creator,
		Supply:   consts.TotalSupply,
	}))
	require.NoError(ledger.Credit(ctx, mu, mintAddr, pool.Authority(), asset))
	require.NoError(ledger.Credit(ctx, mu, storage.NativeAsset, pool.Authority(), currency))
	return mu, amm, pool
}

func newController(t *testing.T) *Controller {
	c, err := New(
		ledger.StateLedger{},
		rent.Default,
		consts.VirtualReserve,
		consts.GraduationMultiplier,
		consts.GraduationBonus,
		treasury,
	)
	require.NoError(t, err)
	return c
}

func TestCrossed(t *testing.T) {
	require := require.New(t)
	c := newController(t)

	threshold := consts.GraduationMultiplier * consts.VirtualReserve
	require.Equal(threshold, c.Threshold())
	require.False(c.Crossed(threshold))
	require.True(c.Crossed(threshold + 1))

	_, err := New(ledger.StateLedger{}, rent.Default, consts.MaxUint64, 2, 0, treasury)
	require.ErrorIs(err, fixedpoint.ErrArithmetic)
}

func TestGraduate(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	c := newController(t)

	currency := c.Threshold() + 1
	mu, amm, pool := setup(t, 200_000_000*consts.TokenUnit, currency)

	r, err := c.Graduate(ctx, mu, amm, pool)
	require.NoError(err)

	floor := rent.Default.MinimumBalance(rent.AuthorityDataLen)
	require.Equal(&Result{
		AssetSwept:    200_000_000 * consts.TokenUnit,
		Bonus:         consts.GraduationBonus,
		CurrencySwept: currency - consts.GraduationBonus - floor,
		Retained:      floor,
	}, r)

	stored, err := storage.GetAmm(ctx, mu, ammAddr)
	require.NoError(err)
	require.Equal(storage.Locked, stored.Status)

	l := ledger.StateLedger{}
	bal, err := l.BalanceOf(ctx, mu, mintAddr, pool.Authority())
	require.NoError(err)
	require.Zero(bal)
	bal, err = l.BalanceOf(ctx, mu, mintAddr, treasury)
	require.NoError(err)
	require.Equal(r.AssetSwept, bal)
	bal, err = l.NativeBalanceOf(ctx, mu, creator)
	require.NoError(err)
	require.Equal(consts.GraduationBonus, bal)
	bal, err = l.NativeBalanceOf(ctx, mu, treasury)
	require.NoError(err)
	require.Equal(r.CurrencySwept, bal)
	bal, err = l.NativeBalanceOf(ctx, mu, pool.Authority())
	require.NoError(err)
	require.Equal(floor, bal)

	// A pool graduates once.
	_, err = c.Graduate(ctx, mu, stored, pool)
	require.ErrorIs(err, storage.ErrInvalidTransition)
}

func TestGraduateBelowFloor(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	c := newController(t)

	// Enough for the bonus but not for the retained balance.
	mu, amm, pool := setup(t, 1, consts.GraduationBonus+1)
	_, err := c.Graduate(ctx, mu, amm, pool)
	require.ErrorIs(err, fixedpoint.ErrArithmetic)
}

func TestGraduateMissingBonus(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	c := newController(t)

	mu, amm, pool := setup(t, 1, consts.GraduationBonus-1)
	_, err := c.Graduate(ctx, mu, amm, pool)
	require.ErrorIs(err, ledger.ErrInsufficientFunds)
}

func TestGraduateRetainsOracleFloor(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	const floor = 5_000
	oracle := rent.NewMockOracle(ctrl)
	oracle.EXPECT().MinimumBalance(uint64(rent.AuthorityDataLen)).Return(uint64(floor)).Times(1)

	c, err := New(
		ledger.StateLedger{},
		oracle,
		consts.VirtualReserve,
		consts.GraduationMultiplier,
		consts.GraduationBonus,
		treasury,
	)
	require.NoError(err)

	currency := c.Threshold() + 1
	mu, amm, pool := setup(t, 1, currency)
	r, err := c.Graduate(ctx, mu, amm, pool)
	require.NoError(err)
	require.Equal(uint64(floor), r.Retained)
	require.Equal(currency-consts.GraduationBonus-floor, r.CurrencySwept)

	bal, err := ledger.StateLedger{}.NativeBalanceOf(ctx, mu, pool.Authority())
	require.NoError(err)
	require.Equal(uint64(floor), bal)
}
