// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"errors"

	"github.com/eyovvalupe/pump.fun-Raydium/fees"
)

var (
	// Amm and pool errors
	ErrInvalidFee        = fees.ErrInvalidFee
	ErrAmmAlreadyExists  = errors.New("amm already exists")
	ErrPoolAlreadyExists = errors.New("pool already exists")
	ErrPoolLocked        = errors.New("pool is locked")

	// Swap errors
	ErrOutputTooSmall  = errors.New("output is below minimum")
	ErrCreatorMismatch = errors.New("creator does not match mint")
	ErrReserveMismatch = errors.New("ledger reserves do not match curve")
	ErrProductDecrease = errors.New("curve product decreased")

	// Mint errors
	ErrMintAlreadyExists = errors.New("mint already exists")
	ErrNameEmpty         = errors.New("name is empty")
	ErrNameTooLarge      = errors.New("name is too large")
	ErrSymbolEmpty       = errors.New("symbol is empty")
	ErrSymbolTooLarge    = errors.New("symbol is too large")
	ErrURITooLarge       = errors.New("uri is too large")

	ErrValueZero = errors.New("value is zero")
)
