// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger moves balances between accounts. Pool custody is held by
// derived authority accounts which only [Ledger.TransferFromAuthority] may
// debit.
package ledger

import (
	"context"
	"errors"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnauthorized      = errors.New("unauthorized")
)

// AuthorityHandle names the authority of one pool. The ledger decides which
// account it maps to.
type AuthorityHandle struct {
	Amm  codec.Address
	Mint codec.Address
}

type Ledger interface {
	// Transfer moves [amount] of [asset] from [from] to [to]. It fails with
	// [ErrUnauthorized] when [from] is a pool authority.
	Transfer(
		ctx context.Context,
		mu state.Mutable,
		asset codec.Address,
		from codec.Address,
		to codec.Address,
		amount uint64,
	) error

	// TransferFromAuthority moves [amount] of [asset] out of the custody of
	// the pool named by [h].
	TransferFromAuthority(
		ctx context.Context,
		mu state.Mutable,
		asset codec.Address,
		h AuthorityHandle,
		to codec.Address,
		amount uint64,
	) error

	BalanceOf(ctx context.Context, im state.Immutable, asset codec.Address, owner codec.Address) (uint64, error)
	NativeBalanceOf(ctx context.Context, im state.Immutable, owner codec.Address) (uint64, error)

	// Authority resolves [h] to the account holding the pool custody.
	Authority(h AuthorityHandle) codec.Address
}
