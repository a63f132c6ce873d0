// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fees

import (
	"errors"
	"fmt"

	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/fixedpoint"
)

var ErrInvalidFee = errors.New("invalid fee")

// ValidateFee rejects fees of 100% or more.
func ValidateFee(bps uint16) error {
	if bps >= consts.MaxFee {
		return fmt.Errorf("%w: %d bps must be below %d", ErrInvalidFee, bps, consts.MaxFee)
	}
	return nil
}

// Split divides [amount] into what the recipient keeps and the protocol fee
// of [bps] basis points. The fee is truncated so net+fee == amount always
// holds.
func Split(amount uint64, bps uint16) (net uint64, fee uint64, err error) {
	if err := ValidateFee(bps); err != nil {
		return 0, 0, err
	}
	fee, err = fixedpoint.BasisPoints(amount, bps)
	if err != nil {
		return 0, 0, err
	}
	net, err = fixedpoint.Sub(amount, fee)
	if err != nil {
		return 0, 0, err
	}
	return net, fee, nil
}
