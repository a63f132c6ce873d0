// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "github.com/eyovvalupe/pump.fun-Raydium/codec"

// State
// 0x0/ (amm)
//   -> [amm] => id|admin|fee|status
// 0x1/ (pool)
//   -> [amm|mint] => amm|mint
// 0x2/ (mint)
//   -> [mint] => name|symbol|uri|decimals|creator|supply
// 0x3/ (balance)
//   -> [asset|owner] => balance
// 0x4/ (metadata)
//   -> genesis => hash of the genesis the state was initialized with

// Key prefixes
const (
	ammPrefix byte = iota
	poolPrefix
	mintPrefix
	balancePrefix
	metadataPrefix
)

// Chunks
const (
	AmmChunks     uint16 = 2
	PoolChunks    uint16 = 2
	MintChunks    uint16 = 5
	BalanceChunks uint16 = 1
)

// Mint metadata bounds
const (
	MaxNameSize   = 32
	MaxSymbolSize = 10
	MaxURISize    = 200
)

// NativeAsset is the asset identifier of the native currency in balance
// keys.
var NativeAsset = codec.EmptyAddress
