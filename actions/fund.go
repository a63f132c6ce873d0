// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/eyovvalupe/pump.fun-Raydium/chain"
	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/ledger"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
	"github.com/eyovvalupe/pump.fun-Raydium/storage"
)

var (
	_ codec.Typed  = (*FundResult)(nil)
	_ chain.Action = (*Fund)(nil)
)

type FundResult struct {
	Balance uint64 `json:"balance"`
}

func (*FundResult) GetTypeID() uint8 {
	return consts.FundID
}

// Fund credits native currency out of nothing. It exists for local tooling.
type Fund struct {
	To     codec.Address `json:"to"`
	Amount uint64        `json:"amount"`
}

func (*Fund) GetTypeID() uint8 {
	return consts.FundID
}

func (f *Fund) StateKeys(chain.Rules, codec.Address) state.Keys {
	return state.Keys{
		string(storage.BalanceKey(storage.NativeAsset, f.To)): state.All,
	}
}

func (f *Fund) Execute(
	ctx context.Context,
	_ chain.Rules,
	l ledger.Ledger,
	mu state.Mutable,
	_ codec.Address,
) (codec.Typed, error) {
	if f.Amount == 0 {
		return nil, ErrValueZero
	}
	if err := ledger.Credit(ctx, mu, storage.NativeAsset, f.To, f.Amount); err != nil {
		return nil, err
	}
	bal, err := l.NativeBalanceOf(ctx, mu, f.To)
	if err != nil {
		return nil, err
	}
	return &FundResult{Balance: bal}, nil
}
