// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package tstate buffers the writes of a single call on top of a database.
// Nothing reaches the database until [View.Write] is called, so a call that
// fails part way through leaves no trace.
package tstate

import (
	"context"
	"errors"
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/maybe"
	"golang.org/x/exp/maps"

	"github.com/eyovvalupe/pump.fun-Raydium/keys"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
)

var _ state.Mutable = (*View)(nil)

type View struct {
	base state.Immutable

	// nil scope allows every key with every permission.
	scope state.Keys

	pendingChangedKeys map[string]maybe.Maybe[[]byte]

	closed bool
}

// NewView opens a view over [base] limited to [scope].
func NewView(base state.Immutable, scope state.Keys) *View {
	return &View{
		base:               base,
		scope:              scope,
		pendingChangedKeys: make(map[string]maybe.Maybe[[]byte], len(scope)),
	}
}

func (v *View) checkScope(k string, require state.Permissions) error {
	if v.scope == nil {
		return nil
	}
	permissions, ok := v.scope[k]
	if !ok {
		return ErrKeyNotSpecified
	}
	if !permissions.Has(require) {
		switch require {
		case state.Read:
			return ErrReadDisabled
		case state.Allocate:
			return ErrAllocationDisabled
		default:
			return ErrWriteDisabled
		}
	}
	return nil
}

// getValue reports whether [k] exists in the view and, if so, its value.
func (v *View) getValue(ctx context.Context, k string) ([]byte, bool, error) {
	if value, ok := v.pendingChangedKeys[k]; ok {
		if value.IsNothing() {
			return nil, false, nil
		}
		return value.Value(), true, nil
	}
	value, err := v.base.GetValue(ctx, []byte(k))
	switch {
	case errors.Is(err, database.ErrNotFound):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	default:
		return value, true, nil
	}
}

// GetValue returns the value of [key] as seen by this view.
func (v *View) GetValue(ctx context.Context, key []byte) ([]byte, error) {
	if v.closed {
		return nil, ErrViewClosed
	}
	k := string(key)
	if err := v.checkScope(k, state.Read); err != nil {
		return nil, err
	}
	value, exists, err := v.getValue(ctx, k)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, database.ErrNotFound
	}
	return value, nil
}

// Insert sets [key] to [value]. Creating a key requires Allocate, updating
// one requires Write.
//
// Any bytes passed into [Insert] will be consumed by [View] and should
// not be modified/referenced after this call.
func (v *View) Insert(ctx context.Context, key []byte, value []byte) error {
	if v.closed {
		return ErrViewClosed
	}
	if !keys.VerifyValue(key, value) {
		return ErrInvalidKeyValue
	}
	k := string(key)
	_, exists, err := v.getValue(ctx, k)
	if err != nil {
		return err
	}
	require := state.Write
	if !exists {
		require = state.Allocate
	}
	if err := v.checkScope(k, require); err != nil {
		return err
	}
	v.pendingChangedKeys[k] = maybe.Some(value)
	return nil
}

// Remove deletes [key]. Removing a missing key is a no-op.
func (v *View) Remove(ctx context.Context, key []byte) error {
	if v.closed {
		return ErrViewClosed
	}
	k := string(key)
	if err := v.checkScope(k, state.Write); err != nil {
		return err
	}
	_, exists, err := v.getValue(ctx, k)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	v.pendingChangedKeys[k] = maybe.Nothing[[]byte]()
	return nil
}

// PendingChanges returns the number of keys changed by the view.
func (v *View) PendingChanges() int {
	return len(v.pendingChangedKeys)
}

// Write flushes every pending change into [w] in key order and closes the
// view. When [w] is a batch the caller commits all changes at once.
func (v *View) Write(w database.KeyValueWriterDeleter) error {
	if v.closed {
		return ErrViewClosed
	}
	v.closed = true

	changed := maps.Keys(v.pendingChangedKeys)
	slices.Sort(changed)
	for _, k := range changed {
		value := v.pendingChangedKeys[k]
		var err error
		if value.IsNothing() {
			err = w.Delete([]byte(k))
		} else {
			err = w.Put([]byte(k), value.Value())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Discard drops every pending change.
func (v *View) Discard() {
	v.closed = true
	v.pendingChangedKeys = nil
}
