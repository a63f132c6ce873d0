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

// MaxMintSize bounds the encoding of a mint record. Strings carry a two
// byte length prefix.
const MaxMintSize = consts.Uint16Len + MaxNameSize +
	consts.Uint16Len + MaxSymbolSize +
	consts.Uint16Len + MaxURISize +
	consts.ByteLen + codec.AddressLen + consts.Uint64Len

// Mint describes an issued token. Issuance is closed once the record
// exists: the whole supply is minted at creation.
type Mint struct {
	Name     string        `json:"name"`
	Symbol   string        `json:"symbol"`
	URI      string        `json:"uri"`
	Decimals uint8         `json:"decimals"`
	Creator  codec.Address `json:"creator"`
	Supply   uint64        `json:"supply"`
}

func (m *Mint) Marshal() []byte {
	p := codec.NewWriter(MaxMintSize, MaxMintSize)
	p.PackString(m.Name)
	p.PackString(m.Symbol)
	p.PackString(m.URI)
	p.PackByte(m.Decimals)
	p.PackAddress(m.Creator)
	p.PackUint64(m.Supply)
	return p.Bytes()
}

func UnmarshalMint(b []byte) (*Mint, error) {
	var m Mint
	p := codec.NewReader(b, MaxMintSize)
	m.Name = p.UnpackString(true)
	m.Symbol = p.UnpackString(true)
	m.URI = p.UnpackString(false)
	m.Decimals = p.UnpackByte()
	p.UnpackAddress(&m.Creator, true)
	m.Supply = p.UnpackUint64(true)
	if err := p.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	if !p.Empty() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRecord, codec.ErrTrailingBytes)
	}
	return &m, nil
}

// [mintPrefix] + [mint]
func MintKey(mint codec.Address) []byte {
	k := make([]byte, 0, consts.ByteLen+codec.AddressLen+consts.Uint16Len)
	k = append(k, mintPrefix)
	k = append(k, mint[:]...)
	return keys.EncodeChunks(k, MintChunks)
}

func GetMint(ctx context.Context, im state.Immutable, mint codec.Address) (*Mint, error) {
	v, err := im.GetValue(ctx, MintKey(mint))
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrMintNotFound, mint)
	}
	if err != nil {
		return nil, err
	}
	return UnmarshalMint(v)
}

func HasMint(ctx context.Context, im state.Immutable, mint codec.Address) (bool, error) {
	return has(ctx, im, MintKey(mint))
}

func SetMint(ctx context.Context, mu state.Mutable, mint codec.Address, m *Mint) error {
	return mu.Insert(ctx, MintKey(mint), m.Marshal())
}
