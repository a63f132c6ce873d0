// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package state defines the key-value surface every action reads and
// writes through. Records are never touched except through these methods.
package state

import "context"

// Immutable returns [database.ErrNotFound] for a missing key.
type Immutable interface {
	GetValue(ctx context.Context, key []byte) ([]byte, error)
}

type Mutable interface {
	Immutable

	// Insert creates or replaces the value under key.
	Insert(ctx context.Context, key []byte, value []byte) error
	// Remove is a no-op for a missing key.
	Remove(ctx context.Context, key []byte) error
}
