// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package graduation retires a pool once enough currency has been raised:
// the Amm is locked, custody is swept to the treasury and the mint creator
// is paid a bonus.
package graduation

import (
	"context"
	"fmt"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/fixedpoint"
	"github.com/eyovvalupe/pump.fun-Raydium/ledger"
	"github.com/eyovvalupe/pump.fun-Raydium/rent"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
	"github.com/eyovvalupe/pump.fun-Raydium/storage"
)

// Result lists what a graduation moved.
type Result struct {
	AssetSwept    uint64 `json:"assetSwept"`
	Bonus         uint64 `json:"bonus"`
	CurrencySwept uint64 `json:"currencySwept"`
	Retained      uint64 `json:"retained"`
}

type Controller struct {
	ledger    ledger.Ledger
	rent      rent.Oracle
	threshold uint64
	bonus     uint64
	treasury  codec.Address
}

// New returns a controller that graduates pools holding more than
// [multiplier] * [virtualReserve] real currency.
func New(
	l ledger.Ledger,
	oracle rent.Oracle,
	virtualReserve uint64,
	multiplier uint64,
	bonus uint64,
	treasury codec.Address,
) (*Controller, error) {
	threshold, err := fixedpoint.Mul(virtualReserve, multiplier)
	if err != nil {
		return nil, err
	}
	return &Controller{
		ledger:    l,
		rent:      oracle,
		threshold: threshold,
		bonus:     bonus,
		treasury:  treasury,
	}, nil
}

func (c *Controller) Threshold() uint64 {
	return c.threshold
}

// Crossed reports whether [reserveCurrency] is strictly above the
// graduation threshold.
func (c *Controller) Crossed(reserveCurrency uint64) bool {
	return reserveCurrency > c.threshold
}

// Graduate locks [amm] and empties the custody of [pool]. The caller must
// discard all of [mu] if an error is returned.
//
// The lock is written on the Amm, so every pool under it stops trading.
func (c *Controller) Graduate(
	ctx context.Context,
	mu state.Mutable,
	amm *storage.Amm,
	pool *storage.Pool,
) (*Result, error) {
	status, err := amm.Status.Transition(storage.Locked)
	if err != nil {
		return nil, err
	}
	amm.Status = status
	if err := storage.SetAmm(ctx, mu, amm); err != nil {
		return nil, err
	}

	mint, err := storage.GetMint(ctx, mu, pool.Mint)
	if err != nil {
		return nil, err
	}
	var (
		h         = ledger.AuthorityHandle{Amm: pool.Amm, Mint: pool.Mint}
		authority = c.ledger.Authority(h)
		r         = &Result{Bonus: c.bonus}
	)

	r.AssetSwept, err = c.ledger.BalanceOf(ctx, mu, pool.Mint, authority)
	if err != nil {
		return nil, err
	}
	if err := c.ledger.TransferFromAuthority(ctx, mu, pool.Mint, h, c.treasury, r.AssetSwept); err != nil {
		return nil, fmt.Errorf("sweeping asset: %w", err)
	}

	if err := c.ledger.TransferFromAuthority(ctx, mu, storage.NativeAsset, h, mint.Creator, c.bonus); err != nil {
		return nil, fmt.Errorf("paying bonus: %w", err)
	}

	balance, err := c.ledger.NativeBalanceOf(ctx, mu, authority)
	if err != nil {
		return nil, err
	}
	r.Retained = c.rent.MinimumBalance(rent.AuthorityDataLen)
	r.CurrencySwept, err = fixedpoint.Sub(balance, r.Retained)
	if err != nil {
		return nil, fmt.Errorf("sweeping currency: %w", err)
	}
	if err := c.ledger.TransferFromAuthority(ctx, mu, storage.NativeAsset, h, c.treasury, r.CurrencySwept); err != nil {
		return nil, fmt.Errorf("sweeping currency: %w", err)
	}
	return r, nil
}
