// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"context"
	"errors"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/ledger"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
)

var (
	_ ledger.Ledger = (*FailingLedger)(nil)

	ErrInjected = errors.New("injected failure")
)

// FailingLedger wraps a ledger and fails the [FailAt]-th transfer (counting
// from 1). Transfers before it succeed.
type FailingLedger struct {
	ledger.Ledger

	FailAt    int
	transfers int
}

func (f *FailingLedger) fail() bool {
	f.transfers++
	return f.transfers == f.FailAt
}

func (f *FailingLedger) Transfer(
	ctx context.Context,
	mu state.Mutable,
	asset codec.Address,
	from codec.Address,
	to codec.Address,
	amount uint64,
) error {
	if f.fail() {
		return ErrInjected
	}
	return f.Ledger.Transfer(ctx, mu, asset, from, to, amount)
}

func (f *FailingLedger) TransferFromAuthority(
	ctx context.Context,
	mu state.Mutable,
	asset codec.Address,
	h ledger.AuthorityHandle,
	to codec.Address,
	amount uint64,
) error {
	if f.fail() {
		return ErrInjected
	}
	return f.Ledger.TransferFromAuthority(ctx, mu, asset, h, to, amount)
}
