// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/stretchr/testify/require"
)

func TestPermissionsHas(t *testing.T) {
	tests := []struct {
		name       string
		permission Permissions
		require    Permissions
		has        bool
	}{
		{name: "all has write", permission: All, require: Write, has: true},
		{name: "write implies read", permission: Write, require: Read, has: true},
		{name: "read lacks write", permission: Read, require: Write, has: false},
		{name: "write lacks allocate", permission: Write, require: Allocate, has: false},
		{name: "none lacks read", permission: None, require: Read, has: false},
		{name: "none requires none", permission: None, require: None, has: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.has, tt.permission.Has(tt.require))
		})
	}
}

func TestKeysAdd(t *testing.T) {
	require := require.New(t)

	k := Keys{}
	k.Add([]byte("a"), Read)
	k.Add([]byte("a"), Write)
	require.Equal(Write, k["a"])

	k.Add([]byte("a"), Allocate)
	k.Add([]byte("b"), Read)
	require.Equal(All, k["a"])
	require.Equal(Read, k["b"])
	require.Len(k, 2)
}

func TestDatabaseStorage(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	s := NewDatabaseStorage(memdb.New())
	_, err := s.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(s.Insert(ctx, []byte("k"), []byte("v")))
	v, err := s.GetValue(ctx, []byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)

	require.NoError(s.Remove(ctx, []byte("k")))
	_, err = s.GetValue(ctx, []byte("k"))
	require.ErrorIs(err, database.ErrNotFound)
}
