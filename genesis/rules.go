// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"errors"
	"fmt"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/fees"
	"github.com/eyovvalupe/pump.fun-Raydium/fixedpoint"
	"github.com/eyovvalupe/pump.fun-Raydium/rent"
	"github.com/eyovvalupe/pump.fun-Raydium/storage"
)

var (
	ErrInvalidRules    = errors.New("invalid rules")
	ErrMissingTreasury = fmt.Errorf("%w: treasury not set", ErrInvalidRules)
)

// Rules are the curve parameters every pool trades under.
type Rules struct {
	VirtualReserve       uint64        `json:"virtualReserve"`
	GraduationMultiplier uint64        `json:"graduationMultiplier"`
	GraduationBonus      uint64        `json:"graduationBonus"`
	DefaultFee           uint16        `json:"defaultFee"`
	Treasury             codec.Address `json:"treasury"`
	Rent                 rent.Schedule `json:"rent"`
}

func NewDefaultRules() *Rules {
	return &Rules{
		VirtualReserve:       consts.VirtualReserve,
		GraduationMultiplier: consts.GraduationMultiplier,
		GraduationBonus:      consts.GraduationBonus,
		DefaultFee:           consts.DefaultFee,
		Rent:                 rent.Default,
	}
}

func (r *Rules) GetVirtualReserve() uint64 {
	return r.VirtualReserve
}

func (r *Rules) GetGraduationMultiplier() uint64 {
	return r.GraduationMultiplier
}

func (r *Rules) GetGraduationBonus() uint64 {
	return r.GraduationBonus
}

func (r *Rules) GetDefaultFee() uint16 {
	return r.DefaultFee
}

func (r *Rules) GetTreasury() codec.Address {
	return r.Treasury
}

func (r *Rules) GetRent() rent.Oracle {
	return r.Rent
}

// Verify checks that the rules describe a tradable curve.
func (r *Rules) Verify() error {
	if r.VirtualReserve == 0 {
		return fmt.Errorf("%w: virtual reserve is zero", ErrInvalidRules)
	}
	if r.GraduationMultiplier == 0 {
		return fmt.Errorf("%w: graduation multiplier is zero", ErrInvalidRules)
	}
	if _, err := fixedpoint.Mul(r.VirtualReserve, r.GraduationMultiplier); err != nil {
		return fmt.Errorf("%w: graduation threshold: %w", ErrInvalidRules, err)
	}
	if err := fees.ValidateFee(r.DefaultFee); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}
	if r.Treasury == codec.EmptyAddress {
		return ErrMissingTreasury
	}
	if storage.IsAuthority(r.Treasury) {
		return fmt.Errorf("%w: treasury %s is a pool authority", ErrInvalidRules, r.Treasury)
	}
	return nil
}
