// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
)

var _ database.Iterator = (*iterator)(nil)

type iterator struct {
	iter    *pebble.Iterator
	started bool
	valid   bool
	err     error

	key   []byte
	value []byte
}

func (it *iterator) Next() bool {
	if it.err != nil || it.iter == nil {
		return false
	}
	if !it.started {
		it.started = true
		it.valid = it.iter.First()
	} else {
		it.valid = it.iter.Next()
	}
	if !it.valid {
		it.key, it.value = nil, nil
		it.err = it.iter.Error()
		return false
	}
	it.key = append([]byte{}, it.iter.Key()...)
	it.value = append([]byte{}, it.iter.Value()...)
	return true
}

func (it *iterator) Error() error {
	return it.err
}

func (it *iterator) Key() []byte {
	return it.key
}

func (it *iterator) Value() []byte {
	return it.value
}

func (it *iterator) Release() {
	if it.iter == nil {
		return
	}
	if err := it.iter.Close(); err != nil && it.err == nil {
		it.err = err
	}
	it.iter = nil
}
