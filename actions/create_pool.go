// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/eyovvalupe/pump.fun-Raydium/chain"
	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/ledger"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
	"github.com/eyovvalupe/pump.fun-Raydium/storage"
)

var (
	_ codec.Typed  = (*CreatePoolResult)(nil)
	_ chain.Action = (*CreatePool)(nil)
)

type CreatePoolResult struct {
	Pool      *storage.Pool `json:"pool"`
	Authority codec.Address `json:"authority"`
}

func (*CreatePoolResult) GetTypeID() uint8 {
	return consts.CreatePoolID
}

// CreatePool pairs [Mint] with [Amm]. Custody starts empty.
type CreatePool struct {
	Amm  codec.Address `json:"amm"`
	Mint codec.Address `json:"mint"`
}

func (*CreatePool) GetTypeID() uint8 {
	return consts.CreatePoolID
}

func (c *CreatePool) StateKeys(chain.Rules, codec.Address) state.Keys {
	return state.Keys{
		string(storage.AmmKey(c.Amm)):          state.Read,
		string(storage.MintKey(c.Mint)):        state.Read,
		string(storage.PoolKey(c.Amm, c.Mint)): state.All,
	}
}

func (c *CreatePool) Execute(
	ctx context.Context,
	_ chain.Rules,
	l ledger.Ledger,
	mu state.Mutable,
	_ codec.Address,
) (codec.Typed, error) {
	if _, err := storage.GetAmm(ctx, mu, c.Amm); err != nil {
		return nil, err
	}
	exists, err := storage.HasMint(ctx, mu, c.Mint)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", storage.ErrMintNotFound, c.Mint)
	}
	exists, err = storage.HasPool(ctx, mu, c.Amm, c.Mint)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPoolAlreadyExists
	}
	pool := &storage.Pool{Amm: c.Amm, Mint: c.Mint}
	if err := storage.SetPool(ctx, mu, pool); err != nil {
		return nil, err
	}
	return &CreatePoolResult{
		Pool:      pool,
		Authority: l.Authority(ledger.AuthorityHandle{Amm: c.Amm, Mint: c.Mint}),
	}, nil
}
