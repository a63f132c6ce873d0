// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen   = 1
	BoolLen   = 1
	Uint16Len = 2
	Uint64Len = 8
	IDLen     = 32

	MaxUint16 = ^uint16(0)
	MaxUint64 = ^uint64(0)
)

const (
	Name = "curvevm"

	// AuthoritySeed is mixed into every pool authority derivation.
	AuthoritySeed = "Authority"
)

// Native currency
const (
	NativeDecimals = 9
	NativeUnit     = uint64(1_000_000_000)
)

// Issued tokens
const (
	TokenDecimals = 6
	TokenUnit     = uint64(1_000_000)
	TotalSupply   = 1_000_000_000 * TokenUnit
)

// Curve parameters
const (
	// VirtualReserve is added to the native side of every pool while
	// pricing. It is never deposited.
	VirtualReserve = 24 * NativeUnit

	// A pool graduates once its real native reserve exceeds
	// GraduationMultiplier * VirtualReserve.
	GraduationMultiplier = uint64(85)

	// GraduationBonus is paid to the mint creator on graduation.
	GraduationBonus = 1 * NativeUnit
)

// Fees are expressed in basis points.
const (
	BasisPoints = uint64(10_000)
	MaxFee      = uint16(10_000) // exclusive
	DefaultFee  = uint16(100)
)

// Address type IDs
const (
	AccountID uint8 = iota
	AmmID
	MintID
	AuthorityID
)

// Action IDs
const (
	CreateAmmID uint8 = iota
	CreatePoolID
	CreateMintID
	SwapID
	DepositID
	FundID
)
