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
	_ codec.Typed  = (*CreateMintResult)(nil)
	_ chain.Action = (*CreateMint)(nil)
)

type CreateMintResult struct {
	Mint codec.Address `json:"mint"`
}

func (*CreateMintResult) GetTypeID() uint8 {
	return consts.CreateMintID
}

// CreateMint issues a new token and credits its whole supply to the actor.
// No more of it can ever be minted.
type CreateMint struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	URI    string `json:"uri"`
}

func (*CreateMint) GetTypeID() uint8 {
	return consts.CreateMintID
}

func (c *CreateMint) StateKeys(_ chain.Rules, actor codec.Address) state.Keys {
	mint := storage.MintAddress(actor, c.Symbol)
	return state.Keys{
		string(storage.MintKey(mint)):           state.All,
		string(storage.BalanceKey(mint, actor)): state.All,
	}
}

func (c *CreateMint) verify() error {
	switch {
	case len(c.Name) == 0:
		return ErrNameEmpty
	case len(c.Name) > storage.MaxNameSize:
		return ErrNameTooLarge
	case len(c.Symbol) == 0:
		return ErrSymbolEmpty
	case len(c.Symbol) > storage.MaxSymbolSize:
		return ErrSymbolTooLarge
	case len(c.URI) > storage.MaxURISize:
		return ErrURITooLarge
	default:
		return nil
	}
}

func (c *CreateMint) Execute(
	ctx context.Context,
	_ chain.Rules,
	_ ledger.Ledger,
	mu state.Mutable,
	actor codec.Address,
) (codec.Typed, error) {
	if err := c.verify(); err != nil {
		return nil, err
	}
	mint := storage.MintAddress(actor, c.Symbol)
	exists, err := storage.HasMint(ctx, mu, mint)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrMintAlreadyExists
	}
	if err := storage.SetMint(ctx, mu, mint, &storage.Mint{
		Name:     c.Name,
		Symbol:   c.Symbol,
		URI:      c.URI,
		Decimals: consts.TokenDecimals,
		Creator:  actor,
		Supply:   consts.TotalSupply,
	}); err != nil {
		return nil, err
	}
	if err := ledger.Credit(ctx, mu, mint, actor, consts.TotalSupply); err != nil {
		return nil, err
	}
	return &CreateMintResult{Mint: mint}, nil
}
