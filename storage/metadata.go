// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
)

var genesisKey = []byte{metadataPrefix, 'g'}

// GetGenesisID returns the id of the genesis [db] was initialized with.
// [ok] is false when the database was never initialized.
func GetGenesisID(db database.KeyValueReader) (ids.ID, bool, error) {
	v, err := db.Get(genesisKey)
	if errors.Is(err, database.ErrNotFound) {
		return ids.Empty, false, nil
	}
	if err != nil {
		return ids.Empty, false, err
	}
	id, err := ids.ToID(v)
	if err != nil {
		return ids.Empty, false, err
	}
	return id, true, nil
}

func SetGenesisID(db database.KeyValueWriter, id ids.ID) error {
	return db.Put(genesisKey, id[:])
}
