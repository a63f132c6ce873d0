// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
)

var (
	_ Mutable = MutableStorage(nil)
	_ Mutable = (*DatabaseStorage)(nil)
)

// MutableStorage implements [Mutable] with a key-value map.
type MutableStorage map[string][]byte

func (m MutableStorage) GetValue(_ context.Context, key []byte) ([]byte, error) {
	if v, has := m[string(key)]; has {
		return v, nil
	}
	return nil, database.ErrNotFound
}

func (m MutableStorage) Insert(_ context.Context, key []byte, value []byte) error {
	m[string(key)] = value
	return nil
}

func (m MutableStorage) Remove(_ context.Context, key []byte) error {
	delete(m, string(key))
	return nil
}

// DatabaseStorage implements [Mutable] directly on top of a database.
// Writes are not buffered.
type DatabaseStorage struct {
	db database.Database
}

func NewDatabaseStorage(db database.Database) *DatabaseStorage {
	return &DatabaseStorage{db: db}
}

func (d *DatabaseStorage) GetValue(_ context.Context, key []byte) ([]byte, error) {
	return d.db.Get(key)
}

func (d *DatabaseStorage) Insert(_ context.Context, key []byte, value []byte) error {
	return d.db.Put(key, value)
}

func (d *DatabaseStorage) Remove(_ context.Context, key []byte) error {
	return d.db.Delete(key)
}
