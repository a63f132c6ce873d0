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

const AmmSize = codec.AddressLen + codec.AddressLen + consts.Uint16Len + consts.ByteLen

// Amm holds the parameters shared by every pool created under it.
type Amm struct {
	ID     codec.Address `json:"id"`
	Admin  codec.Address `json:"admin"`
	Fee    uint16        `json:"fee"`
	Status Status        `json:"status"`
}

func (a *Amm) Locked() bool {
	return a.Status == Locked
}

func (a *Amm) Marshal() []byte {
	p := codec.NewWriter(AmmSize, AmmSize)
	p.PackAddress(a.ID)
	p.PackAddress(a.Admin)
	p.PackUint16(a.Fee)
	p.PackByte(byte(a.Status))
	return p.Bytes()
}

func UnmarshalAmm(b []byte) (*Amm, error) {
	if len(b) != AmmSize {
		return nil, fmt.Errorf("%w: amm has %d bytes", ErrInvalidRecord, len(b))
	}
	var a Amm
	p := codec.NewReader(b, AmmSize)
	p.UnpackAddress(&a.ID, true)
	p.UnpackAddress(&a.Admin, false)
	a.Fee = p.UnpackUint16()
	a.Status = Status(p.UnpackByte())
	if err := p.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if !a.Status.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, a.Status)
	}
	return &a, nil
}

// [ammPrefix] + [amm]
func AmmKey(amm codec.Address) []byte {
	k := make([]byte, 0, consts.ByteLen+codec.AddressLen+consts.Uint16Len)
	k = append(k, ammPrefix)
	k = append(k, amm[:]...)
	return keys.EncodeChunks(k, AmmChunks)
}

func GetAmm(ctx context.Context, im state.Immutable, amm codec.Address) (*Amm, error) {
	v, err := im.GetValue(ctx, AmmKey(amm))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrAmmNotFound, amm)
	}
	if err != nil {
		return nil, err
	}
	return UnmarshalAmm(v)
}

func HasAmm(ctx context.Context, im state.Immutable, amm codec.Address) (bool, error) {
	return has(ctx, im, AmmKey(amm))
}

func SetAmm(ctx context.Context, mu state.Mutable, a *Amm) error {
	return mu.Insert(ctx, AmmKey(a.ID), a.Marshal())
}

func has(ctx context.Context, im state.Immutable, k []byte) (bool, error) {
	_, err := im.GetValue(ctx, k)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
