// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/utils"
)

// AmmAddress returns the address of the Amm created under [id].
func AmmAddress(id ids.ID) codec.Address {
	return codec.CreateAddress(consts.AmmID, id)
}

// MintAddress derives the address of a mint from its creator and symbol. A
// creator can issue a given symbol only once.
func MintAddress(creator codec.Address, symbol string) codec.Address {
	v := make([]byte, codec.AddressLen+len(symbol))
	copy(v, creator[:])
	copy(v[codec.AddressLen:], symbol)
	return codec.CreateAddress(consts.MintID, utils.ToID(v))
}

// AuthorityAddress derives the account that holds the custody of the pool
// ([amm], [mint]). Nobody holds a key for it.
func AuthorityAddress(amm codec.Address, mint codec.Address) codec.Address {
	v := make([]byte, codec.AddressLen+codec.AddressLen+len(consts.AuthoritySeed))
	copy(v, amm[:])
	copy(v[codec.AddressLen:], mint[:])
	copy(v[2*codec.AddressLen:], consts.AuthoritySeed)
	return codec.CreateAddress(consts.AuthorityID, utils.ToID(v))
}

// IsAuthority reports whether [addr] is a derived pool authority.
func IsAuthority(addr codec.Address) bool {
	return addr.TypeID() == consts.AuthorityID
}
