// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chaintest

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"

	"github.com/eyovvalupe/pump.fun-Raydium/chain"
	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/ledger"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
)

var _ database.KeyValueWriterDeleter = (*stateWriter)(nil)

// stateWriter applies the changes of a successful action to a
// [state.Mutable].
type stateWriter struct {
	ctx context.Context
	mu  state.Mutable
}

func (s *stateWriter) Put(key []byte, value []byte) error {
	return s.mu.Insert(s.ctx, key, value)
}

func (s *stateWriter) Delete(key []byte) error {
	return s.mu.Remove(s.ctx, key)
}

// ActionTest is a single parameterized test. It executes the action in a
// view scoped to its state keys, commits the view into State on success and
// checks that all assertions pass.
type ActionTest struct {
	Name string

	Action chain.Action

	Rules  chain.Rules
	Ledger ledger.Ledger
	State  state.Mutable
	Actor  codec.Address

	ExpectedOutputs codec.Typed
	ExpectedErr     error

	Assertion func(context.Context, *testing.T, state.Mutable)
}

// Run executes the [ActionTest] and make sure all assertions pass.
func (test *ActionTest) Run(ctx context.Context, t *testing.T) {
	t.Run(test.Name, func(t *testing.T) {
		require := require.New(t)

		l := test.Ledger
		if l == nil {
			l = ledger.StateLedger{}
		}
		output, _, err := chain.Execute(
			ctx,
			test.Action,
			test.Rules,
			l,
			test.State,
			&stateWriter{ctx: ctx, mu: test.State},
			test.Actor,
		)

		require.ErrorIs(err, test.ExpectedErr)
		require.Equal(test.ExpectedOutputs, output)

		if test.Assertion != nil {
			test.Assertion(ctx, t, test.State)
		}
	})
}
