// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/keys"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
)

// [balancePrefix] + [asset] + [owner]
func BalanceKey(asset codec.Address, owner codec.Address) []byte {
	k := make([]byte, 0, consts.ByteLen+2*codec.AddressLen+consts.Uint16Len)
	k = append(k, balancePrefix)
	k = append(k, asset[:]...)
	k = append(k, owner[:]...)
	return keys.EncodeChunks(k, BalanceChunks)
}

// GetBalance returns the balance of [owner] in [asset]. A missing record is
// a zero balance.
func GetBalance(
	ctx context.Context,
	im state.Immutable,
	asset codec.Address,
	owner codec.Address,
) (uint64, error) {
	v, err := im.GetValue(ctx, BalanceKey(asset, owner))
	if errors.Is(err, database.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return database.ParseUInt64(v)
}

// SetBalance stores [balance]. A zero balance deletes the record instead of
// storing 0.
func SetBalance(
	ctx context.Context,
	mu state.Mutable,
	asset codec.Address,
	owner codec.Address,
	balance uint64,
) error {
	k := BalanceKey(asset, owner)
	if balance == 0 {
		return mu.Remove(ctx, k)
	}
	return mu.Insert(ctx, k, database.PackUInt64(balance))
}
