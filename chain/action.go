// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/ledger"
	"github.com/eyovvalupe/pump.fun-Raydium/rent"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
)

// Rules are the parameters actions execute under.
type Rules interface {
	GetVirtualReserve() uint64
	GetGraduationMultiplier() uint64
	GetGraduationBonus() uint64
	GetDefaultFee() uint16
	GetTreasury() codec.Address
	GetRent() rent.Oracle
}

type Action interface {
	codec.Typed

	// StateKeys is a full enumeration of all database keys that could be touched during execution
	// of an [Action]. This is used to restrict what [Execute] may read or write.
	//
	// If any key is removed and then re-created, this will count as a creation
	// instead of a modification.
	StateKeys(rules Rules, actor codec.Address) state.Keys

	// Execute actually runs the [Action]. Any state changes that the [Action] performs should
	// be done here.
	//
	// If any error is returned, all state changes made by the [Action] must be
	// discarded by the caller.
	Execute(
		ctx context.Context,
		rules Rules,
		l ledger.Ledger,
		mu state.Mutable,
		actor codec.Address,
	) (codec.Typed, error)
}
