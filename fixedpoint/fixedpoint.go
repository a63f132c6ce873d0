// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fixedpoint implements the checked integer arithmetic used by
// pricing. Amounts are uint64 counts of the smallest unit of an asset.
// Products are formed in a 256-bit intermediate and every result must fit
// back into 64 bits.
package fixedpoint

import (
	"errors"
	"fmt"

	"github.com/holiman/uint256"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/eyovvalupe/pump.fun-Raydium/consts"
)

var (
	ErrArithmetic     = errors.New("arithmetic error")
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrArithmetic)
)

func Add(a, b uint64) (uint64, error) {
	v, err := smath.Add(a, b)
	if err != nil {
		return 0, fmt.Errorf("%w: %d + %d: %w", ErrArithmetic, a, b, err)
	}
	return v, nil
}

func Sub(a, b uint64) (uint64, error) {
	v, err := smath.Sub(a, b)
	if err != nil {
		return 0, fmt.Errorf("%w: %d - %d: %w", ErrArithmetic, a, b, err)
	}
	return v, nil
}

func Mul(a, b uint64) (uint64, error) {
	v, err := smath.Mul(a, b)
	if err != nil {
		return 0, fmt.Errorf("%w: %d * %d: %w", ErrArithmetic, a, b, err)
	}
	return v, nil
}

// MulDiv returns floor(a * b / d). The product is computed at full width so
// it never overflows; only a quotient that does not fit in 64 bits fails.
func MulDiv(a, b, d uint64) (uint64, error) {
	if d == 0 {
		return 0, fmt.Errorf("%w: %d * %d / 0", ErrDivisionByZero, a, b)
	}
	var (
		x = uint256.NewInt(a)
		y = uint256.NewInt(b)
		z = uint256.NewInt(d)
	)
	q, overflow := new(uint256.Int).MulDivOverflow(x, y, z)
	if overflow || !q.IsUint64() {
		return 0, fmt.Errorf("%w: %d * %d / %d overflows", ErrArithmetic, a, b, d)
	}
	return q.Uint64(), nil
}

// BasisPoints returns floor(amount * bps / 10_000).
func BasisPoints(amount uint64, bps uint16) (uint64, error) {
	return MulDiv(amount, uint64(bps), consts.BasisPoints)
}
