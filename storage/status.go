// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "fmt"

// Status is the trading state of an Amm.
type Status uint8

const (
	Active Status = iota
	Locked
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Locked:
		return "locked"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

func (s Status) Valid() bool {
	return s == Active || s == Locked
}

// Transition returns [next] if moving from s to [next] is allowed. The only
// allowed move is Active to Locked.
func (s Status) Transition(next Status) (Status, error) {
	if s != Active || next != Locked {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}
