// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import "errors"

var ErrVirtualReserveZero = errors.New("virtual reserve is zero")

type Model interface {
	// Swap prices [input] and moves the model reserves. When [sellBase] is
	// set [input] is in the base asset and the output in native currency.
	Swap(input uint64, sellBase bool) (uint64, error)
	// Quote prices [input] without moving the reserves.
	Quote(input uint64, sellBase bool) (uint64, error)
	// GetState returns the real asset and currency reserves.
	GetState() (uint64, uint64)
}
