// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

func TestPackerFixedRecord(t *testing.T) {
	require := require.New(t)

	addr := CreateAddress(1, ids.GenerateTestID())
	wp := NewWriter(AddressLen+11, AddressLen+11)
	wp.PackAddress(addr)
	wp.PackUint16(9_999)
	wp.PackUint64(42)
	wp.PackByte(1)
	require.NoError(wp.Err())
	require.Len(wp.Bytes(), AddressLen+11)

	rp := NewReader(wp.Bytes(), AddressLen+11)
	var parsed Address
	rp.UnpackAddress(&parsed, true)
	require.Equal(addr, parsed)
	require.Equal(uint16(9_999), rp.UnpackUint16())
	require.Equal(uint64(42), rp.UnpackUint64(true))
	require.Equal(byte(1), rp.UnpackByte())
	require.NoError(rp.Err())
	require.True(rp.Empty())
}

func TestPackerRequiredFields(t *testing.T) {
	require := require.New(t)

	wp := NewWriter(AddressLen+8, AddressLen+8)
	wp.PackAddress(EmptyAddress)
	wp.PackUint64(0)

	rp := NewReader(wp.Bytes(), AddressLen+8)
	var parsed Address
	rp.UnpackAddress(&parsed, true)
	require.ErrorIs(rp.Err(), ErrFieldNotPopulated)
}

func TestPackerLimit(t *testing.T) {
	require := require.New(t)

	wp := NewWriter(4, 4)
	wp.PackUint64(1)
	require.Error(wp.Err())
}

func TestPackerShortInput(t *testing.T) {
	require := require.New(t)

	rp := NewReader([]byte{0x01}, 8)
	rp.UnpackUint64(false)
	require.Error(rp.Err())
}
