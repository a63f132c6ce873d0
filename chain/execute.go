// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/avalanchego/database"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/ledger"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
	"github.com/eyovvalupe/pump.fun-Raydium/tstate"
)

// Execute runs [action] in a view over [base] scoped to the keys the action
// declares. Changes are written to [w] only when the action succeeds.
func Execute(
	ctx context.Context,
	action Action,
	rules Rules,
	l ledger.Ledger,
	base state.Immutable,
	w database.KeyValueWriterDeleter,
	actor codec.Address,
) (codec.Typed, int, error) {
	view := tstate.NewView(base, action.StateKeys(rules, actor))
	output, err := action.Execute(ctx, rules, l, view, actor)
	if err != nil {
		view.Discard()
		return nil, 0, err
	}
	changes := view.PendingChanges()
	if err := view.Write(w); err != nil {
		return nil, 0, err
	}
	return output, changes, nil
}
