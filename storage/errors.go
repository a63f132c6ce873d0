// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrAmmNotFound  = fmt.Errorf("amm %w", ErrNotFound)
	ErrPoolNotFound = fmt.Errorf("pool %w", ErrNotFound)
	ErrMintNotFound = fmt.Errorf("mint %w", ErrNotFound)

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidRecord     = errors.New("invalid record")
)
