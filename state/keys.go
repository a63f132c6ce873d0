// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

const (
	Read     Permissions = 1
	Allocate             = 1<<1 | Read
	Write                = 1<<2 | Read

	None Permissions = 0
	All              = Read | Allocate | Write
)

// Permissions is a bitset of Read, Allocate and Write.
type Permissions byte

// Has returns true if [p] has all the permissions that are contained in require
func (p Permissions) Has(require Permissions) bool {
	return require&^p == 0
}

// Keys is the set of state keys an action declares before it executes,
// with the permissions it needs on each. Keys are stored as strings so they
// can be used as map keys.
type Keys map[string]Permissions

// Add unions [permission] into the permissions already declared for [key].
func (k Keys) Add(key []byte, permission Permissions) {
	k[string(key)] |= permission
}
