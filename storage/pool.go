// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/keys"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
)

const PoolSize = codec.AddressLen + codec.AddressLen

// Pool pairs one mint with an Amm. Reserves are not stored here; they are
// the balances held by the pool authority.
type Pool struct {
	Amm  codec.Address `json:"amm"`
	Mint codec.Address `json:"mint"`
}

func (p *Pool) Authority() codec.Address {
	return AuthorityAddress(p.Amm, p.Mint)
}

func (p *Pool) Marshal() []byte {
	w := codec.NewWriter(PoolSize, PoolSize)
	w.PackAddress(p.Amm)
	w.PackAddress(p.Mint)
	return w.Bytes()
}

func UnmarshalPool(b []byte) (*Pool, error) {
	if len(b) != PoolSize {
		return nil, fmt.Errorf("%w: pool has %d bytes", ErrInvalidRecord, len(b))
	}
	var p Pool
	r := codec.NewReader(b, PoolSize)
	r.UnpackAddress(&p.Amm, true)
	r.UnpackAddress(&p.Mint, true)
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return &p, nil
}

// [poolPrefix] + [amm] + [mint]
func PoolKey(amm codec.Address, mint codec.Address) []byte {
	k := make([]byte, 0, consts.ByteLen+2*codec.AddressLen+consts.Uint16Len)
	k = append(k, poolPrefix)
	k = append(k, amm[:]...)
	k = append(k, mint[:]...)
	return keys.EncodeChunks(k, PoolChunks)
}

func GetPool(ctx context.Context, im state.Immutable, amm codec.Address, mint codec.Address) (*Pool, error) {
	v, err := im.GetValue(ctx, PoolKey(amm, mint))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: amm=%s mint=%s", ErrPoolNotFound, amm, mint)
	}
	if err != nil {
		return nil, err
	}
	return UnmarshalPool(v)
}

func HasPool(ctx context.Context, im state.Immutable, amm codec.Address, mint codec.Address) (bool, error) {
	return has(ctx, im, PoolKey(amm, mint))
}

func SetPool(ctx context.Context, mu state.Mutable, p *Pool) error {
	return mu.Insert(ctx, PoolKey(p.Amm, p.Mint), p.Marshal())
}
