// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package event

import (
	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/graduation"
)

// Swap is emitted after a swap is committed.
type Swap struct {
	Amm      codec.Address `json:"amm"`
	Mint     codec.Address `json:"mint"`
	Trader   codec.Address `json:"trader"`
	SellBase bool          `json:"sellBase"`
	Input    uint64        `json:"input"`
	Output   uint64        `json:"output"`
	Fee      uint64        `json:"fee"`
}

// Graduation is emitted after the swap that graduated a pool is committed.
type Graduation struct {
	Amm      codec.Address `json:"amm"`
	Mint     codec.Address `json:"mint"`
	Treasury codec.Address `json:"treasury"`
	Creator  codec.Address `json:"creator"`

	graduation.Result
}
