// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"fmt"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
	"github.com/eyovvalupe/pump.fun-Raydium/storage"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

var _ Ledger = StateLedger{}

// StateLedger keeps balances in state under [storage.BalanceKey].
type StateLedger struct{}

func (StateLedger) Transfer(
	ctx context.Context,
	mu state.Mutable,
	asset codec.Address,
	from codec.Address,
	to codec.Address,
	amount uint64,
) error {
	if storage.IsAuthority(from) {
		return fmt.Errorf("%w: %s is a pool authority", ErrUnauthorized, from)
	}
	return transfer(ctx, mu, asset, from, to, amount)
}

func (l StateLedger) TransferFromAuthority(
	ctx context.Context,
	mu state.Mutable,
	asset codec.Address,
	h AuthorityHandle,
	to codec.Address,
	amount uint64,
) error {
	return transfer(ctx, mu, asset, l.Authority(h), to, amount)
}

func (StateLedger) BalanceOf(
	ctx context.Context,
	im state.Immutable,
	asset codec.Address,
	owner codec.Address,
) (uint64, error) {
	return storage.GetBalance(ctx, im, asset, owner)
}

func (StateLedger) NativeBalanceOf(ctx context.Context, im state.Immutable, owner codec.Address) (uint64, error) {
	return storage.GetBalance(ctx, im, storage.NativeAsset, owner)
}

func (StateLedger) Authority(h AuthorityHandle) codec.Address {
	return storage.AuthorityAddress(h.Amm, h.Mint)
}

// Credit adds [amount] of [asset] to [to] out of thin air. It backs issuance
// and the faucet; swaps never call it.
func Credit(
	ctx context.Context,
	mu state.Mutable,
	asset codec.Address,
	to codec.Address,
	amount uint64,
) error {
	bal, err := storage.GetBalance(ctx, mu, asset, to)
	if err != nil {
		return err
	}
	nbal, err := smath.Add(bal, amount)
	if err != nil {
		return fmt.Errorf(
			"%w: could not add balance (bal=%d, addr=%s, amount=%d)",
			err,
			bal,
			to,
			amount,
		)
	}
	return storage.SetBalance(ctx, mu, asset, to, nbal)
}

func transfer(
	ctx context.Context,
	mu state.Mutable,
	asset codec.Address,
	from codec.Address,
	to codec.Address,
	amount uint64,
) error {
	if amount == 0 {
		return nil
	}
	bal, err := storage.GetBalance(ctx, mu, asset, from)
	if err != nil {
		return err
	}
	nbal, err := smath.Sub(bal, amount)
	if err != nil {
		return fmt.Errorf(
			"%w: could not subtract balance (bal=%d, addr=%s, amount=%d)",
			ErrInsufficientFunds,
			bal,
			from,
			amount,
		)
	}
	// A transfer to self moves nothing once the balance covers it.
	if from == to {
		return nil
	}
	if err := storage.SetBalance(ctx, mu, asset, from, nbal); err != nil {
		return err
	}
	return Credit(ctx, mu, asset, to, amount)
}
