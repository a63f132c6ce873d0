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
	_ codec.Typed  = (*DepositResult)(nil)
	_ chain.Action = (*Deposit)(nil)
)

type DepositResult struct {
	ReserveAsset uint64 `json:"reserveAsset"`
}

func (*DepositResult) GetTypeID() uint8 {
	return consts.DepositID
}

// Deposit moves base asset from the actor into the custody of a pool.
type Deposit struct {
	Amm    codec.Address `json:"amm"`
	Mint   codec.Address `json:"mint"`
	Amount uint64        `json:"amount"`
}

func (*Deposit) GetTypeID() uint8 {
	return consts.DepositID
}

func (d *Deposit) StateKeys(_ chain.Rules, actor codec.Address) state.Keys {
	authority := storage.AuthorityAddress(d.Amm, d.Mint)
	return state.Keys{
		string(storage.AmmKey(d.Amm)):                 state.Read,
		string(storage.PoolKey(d.Amm, d.Mint)):        state.Read,
		string(storage.BalanceKey(d.Mint, actor)):     state.All,
		string(storage.BalanceKey(d.Mint, authority)): state.All,
	}
}

func (d *Deposit) Execute(
	ctx context.Context,
	_ chain.Rules,
	l ledger.Ledger,
	mu state.Mutable,
	actor codec.Address,
) (codec.Typed, error) {
	if d.Amount == 0 {
		return nil, ErrValueZero
	}
	amm, err := storage.GetAmm(ctx, mu, d.Amm)
	if err != nil {
		return nil, err
	}
	if _, err := storage.GetPool(ctx, mu, d.Amm, d.Mint); err != nil {
		return nil, err
	}
	if amm.Locked() {
		return nil, ErrPoolLocked
	}
	authority := l.Authority(ledger.AuthorityHandle{Amm: d.Amm, Mint: d.Mint})
	if err := l.Transfer(ctx, mu, d.Mint, actor, authority, d.Amount); err != nil {
		return nil, err
	}
	reserve, err := l.BalanceOf(ctx, mu, d.Mint, authority)
	if err != nil {
		return nil, err
	}
	return &DepositResult{ReserveAsset: reserve}, nil
}
