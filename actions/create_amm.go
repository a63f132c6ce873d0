// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/eyovvalupe/pump.fun-Raydium/chain"
	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/fees"
	"github.com/eyovvalupe/pump.fun-Raydium/ledger"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
	"github.com/eyovvalupe/pump.fun-Raydium/storage"
)

var (
	_ codec.Typed  = (*CreateAmmResult)(nil)
	_ chain.Action = (*CreateAmm)(nil)
)

type CreateAmmResult struct {
	Amm *storage.Amm `json:"amm"`
}

func (*CreateAmmResult) GetTypeID() uint8 {
	return consts.CreateAmmID
}

// CreateAmm registers an Amm under [ID]. The fee is fixed for the life of
// the Amm.
type CreateAmm struct {
	ID ids.ID `json:"id"`

	// Admin defaults to the actor.
	Admin codec.Address `json:"admin"`
	Fee   uint16        `json:"fee"`
}

func (*CreateAmm) GetTypeID() uint8 {
	return consts.CreateAmmID
}

func (c *CreateAmm) StateKeys(chain.Rules, codec.Address) state.Keys {
	return state.Keys{
		string(storage.AmmKey(storage.AmmAddress(c.ID))): state.All,
	}
}

func (c *CreateAmm) Execute(
	ctx context.Context,
	_ chain.Rules,
	_ ledger.Ledger,
	mu state.Mutable,
	actor codec.Address,
) (codec.Typed, error) {
	if err := fees.ValidateFee(c.Fee); err != nil {
		return nil, err
	}
	addr := storage.AmmAddress(c.ID)
	exists, err := storage.HasAmm(ctx, mu, addr)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAmmAlreadyExists
	}
	admin := c.Admin
	if admin == codec.EmptyAddress {
		admin = actor
	}
	amm := &storage.Amm{
		ID:     addr,
		Admin:  admin,
		Fee:    c.Fee,
		Status: storage.Active,
	}
	if err := storage.SetAmm(ctx, mu, amm); err != nil {
		return nil, err
	}
	return &CreateAmmResult{Amm: amm}, nil
}
