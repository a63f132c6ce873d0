// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/eyovvalupe/pump.fun-Raydium/actions"
	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/event"
	"github.com/eyovvalupe/pump.fun-Raydium/genesis"
	"github.com/eyovvalupe/pump.fun-Raydium/pebble"
	"github.com/eyovvalupe/pump.fun-Raydium/rent"
	"github.com/eyovvalupe/pump.fun-Raydium/storage"
)

const (
	symbol      = "CURVE"
	traderAlloc = 2 * consts.NativeUnit
	buyInput    = consts.NativeUnit
	buyFee      = buyInput / 100
	buyOutput   = consts.TotalSupply / 25
)

var (
	creator  = codec.CreateAddress(consts.AccountID, ids.GenerateTestID())
	trader   = codec.CreateAddress(consts.AccountID, ids.GenerateTestID())
	treasury = codec.CreateAddress(consts.AccountID, ids.GenerateTestID())
)

func testGenesis() *genesis.Genesis {
	return genesis.NewDefaultGenesis(treasury, []*genesis.CustomAllocation{
		{Address: trader, Balance: traderAlloc},
	})
}

// launch creates a mint, an Amm with the default fee and their pool, and
// moves the whole supply into custody.
func launch(t *testing.T, vm *VM) (codec.Address, codec.Address) {
	require := require.New(t)
	ctx := context.Background()

	mint, err := vm.CreateMint(ctx, creator, "Curve Token", symbol, "")
	require.NoError(err)
	require.Equal(storage.MintAddress(creator, symbol), mint)

	id := ids.GenerateTestID()
	amm, err := vm.CreateAmm(ctx, creator, id, codec.EmptyAddress, consts.DefaultFee)
	require.NoError(err)
	ammAddr := storage.AmmAddress(id)
	require.Equal(ammAddr, amm.ID)
	require.Equal(creator, amm.Admin)

	pool, err := vm.CreatePool(ctx, creator, ammAddr, mint)
	require.NoError(err)
	require.Equal(&storage.Pool{Amm: ammAddr, Mint: mint}, pool)

	custody, err := vm.Deposit(ctx, creator, ammAddr, mint, consts.TotalSupply)
	require.NoError(err)
	require.Equal(consts.TotalSupply, custody)
	return ammAddr, mint
}

func TestGenesis(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	vm, registry, err := New(ctx, logging.NoLog{}, memdb.New(), testGenesis())
	require.NoError(err)
	require.NotNil(registry)

	bal, err := vm.NativeBalance(ctx, trader)
	require.NoError(err)
	require.Equal(traderAlloc, bal)
	require.Equal(treasury, vm.Rules().GetTreasury())

	g := testGenesis()
	g.Rules.Treasury = codec.EmptyAddress
	_, _, err = New(ctx, logging.NoLog{}, memdb.New(), g)
	require.ErrorIs(err, genesis.ErrMissingTreasury)
}

func TestSwapExactIn(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	swaps := event.NewBuffer[event.Swap](8)
	vm, _, err := New(ctx, logging.NoLog{}, memdb.New(), testGenesis(), WithSwapSubscriptions(swaps))
	require.NoError(err)
	amm, mint := launch(t, vm)

	q, err := vm.Quote(ctx, amm, mint, false, buyInput)
	require.NoError(err)
	require.Equal(&actions.Quotation{
		Output:   buyOutput,
		Fee:      buyFee,
		Received: buyOutput,
		Cost:     buyInput + buyFee,
	}, q)

	// A rejected swap changes nothing and emits nothing.
	_, err = vm.SwapExactIn(ctx, trader, amm, mint, false, buyInput, buyOutput+1)
	require.ErrorIs(err, actions.ErrOutputTooSmall)
	require.Empty(swaps.Events())
	require.Equal(1.0, testutil.ToFloat64(vm.metrics.failedActions.WithLabelValues("swap")))
	bal, err := vm.NativeBalance(ctx, trader)
	require.NoError(err)
	require.Equal(traderAlloc, bal)

	r, err := vm.SwapExactIn(ctx, trader, amm, mint, false, buyInput, buyOutput)
	require.NoError(err)
	require.Equal(buyOutput, r.Output)
	require.Equal(buyFee, r.Fee)
	require.False(r.Graduated)
	require.Equal([]event.Swap{{
		Amm:    amm,
		Mint:   mint,
		Trader: trader,
		Input:  buyInput,
		Output: buyOutput,
		Fee:    buyFee,
	}}, swaps.Events())

	reserveAsset, reserveCurrency, err := vm.Reserves(ctx, amm, mint)
	require.NoError(err)
	require.Equal(consts.TotalSupply-buyOutput, reserveAsset)
	require.Equal(buyInput, reserveCurrency)

	bal, err = vm.NativeBalance(ctx, trader)
	require.NoError(err)
	require.Equal(traderAlloc-buyInput-buyFee, bal)
	bal, err = vm.Balance(ctx, mint, trader)
	require.NoError(err)
	require.Equal(buyOutput, bal)
	bal, err = vm.NativeBalance(ctx, treasury)
	require.NoError(err)
	require.Equal(buyFee, bal)

	require.Equal(1.0, testutil.ToFloat64(vm.metrics.swaps))
	require.Equal(float64(buyInput), testutil.ToFloat64(vm.metrics.volume))

	// A mint that was never issued has no pool either; the pool is
	// reported first.
	_, err = vm.SwapExactIn(ctx, trader, amm, storage.MintAddress(trader, symbol), false, 1, 0)
	require.ErrorIs(err, storage.ErrPoolNotFound)
	_, err = vm.SwapExactIn(ctx, trader, storage.AmmAddress(ids.GenerateTestID()), mint, false, 1, 0)
	require.ErrorIs(err, storage.ErrPoolNotFound)

	require.NoError(vm.Close())
	require.True(swaps.Closed())
}

func TestGraduation(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	const (
		input  = 2_100 * consts.NativeUnit
		fee    = input / 100
		output = uint64(988_700_564_971_751)
	)
	retained := rent.Default.MinimumBalance(rent.AuthorityDataLen)

	graduations := event.NewBuffer[event.Graduation](8)
	vm, _, err := New(ctx, logging.NoLog{}, memdb.New(), testGenesis(), WithGraduationSubscriptions(graduations))
	require.NoError(err)
	amm, mint := launch(t, vm)

	_, err = vm.Fund(ctx, trader, input+fee)
	require.NoError(err)
	r, err := vm.SwapExactIn(ctx, trader, amm, mint, false, input, 0)
	require.NoError(err)
	require.Equal(output, r.Output)
	require.True(r.Graduated)
	require.Len(graduations.Events(), 1)
	require.Equal(event.Graduation{
		Amm:      amm,
		Mint:     mint,
		Treasury: treasury,
		Creator:  creator,
		Result:   *r.Graduation,
	}, graduations.Events()[0])
	require.Equal(retained, r.Graduation.Retained)
	require.Equal(1.0, testutil.ToFloat64(vm.metrics.graduations))

	a, err := vm.GetAmm(ctx, amm)
	require.NoError(err)
	require.Equal(storage.Locked, a.Status)

	_, err = vm.SwapExactIn(ctx, trader, amm, mint, true, output, 0)
	require.ErrorIs(err, actions.ErrPoolLocked)
	_, err = vm.Quote(ctx, amm, mint, true, output)
	require.ErrorIs(err, actions.ErrPoolLocked)
	require.Len(graduations.Events(), 1)
}

func TestClose(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	vm, _, err := New(ctx, logging.NoLog{}, memdb.New(), testGenesis())
	require.NoError(err)
	require.NoError(vm.Close())
	require.ErrorIs(vm.Close(), ErrClosed)

	_, err = vm.NativeBalance(ctx, trader)
	require.ErrorIs(err, ErrClosed)
	_, err = vm.Fund(ctx, trader, 1)
	require.ErrorIs(err, ErrClosed)
	_, err = vm.SwapExactIn(ctx, trader, codec.EmptyAddress, codec.EmptyAddress, false, 1, 0)
	require.ErrorIs(err, ErrClosed)
}

func TestPebblePersistence(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	open := func(g *genesis.Genesis) (*VM, database.Database, error) {
		db, _, err := pebble.New(logging.NoLog{}, dir, pebble.NewDefaultConfig())
		require.NoError(err)
		vm, _, err := New(ctx, logging.NoLog{}, db, g)
		return vm, db, err
	}

	vm, _, err := open(testGenesis())
	require.NoError(err)
	amm, mint := launch(t, vm)
	_, err = vm.SwapExactIn(ctx, trader, amm, mint, false, buyInput, 0)
	require.NoError(err)
	require.NoError(vm.Close())

	// Genesis allocations are not credited twice.
	vm, _, err = open(testGenesis())
	require.NoError(err)
	bal, err := vm.NativeBalance(ctx, trader)
	require.NoError(err)
	require.Equal(traderAlloc-buyInput-buyFee, bal)
	reserveAsset, reserveCurrency, err := vm.Reserves(ctx, amm, mint)
	require.NoError(err)
	require.Equal(consts.TotalSupply-buyOutput, reserveAsset)
	require.Equal(buyInput, reserveCurrency)
	m, err := vm.GetMint(ctx, mint)
	require.NoError(err)
	require.Equal(creator, m.Creator)
	require.NoError(vm.Close())

	g := testGenesis()
	g.Rules.GraduationBonus++
	_, db, err := open(g)
	require.ErrorIs(err, ErrGenesisMismatch)
	require.NoError(db.Close())
}
