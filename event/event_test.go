// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package event

import (
	"context"
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
)

func TestNotifyAll(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	buf := NewBuffer[Swap](8)
	errFailed := errors.New("failed")
	failing := Func[Swap](func(context.Context, Swap) error {
		return errFailed
	})

	e := Swap{Input: 1, Output: 2}
	require.NoError(NotifyAll[Swap](ctx, e, buf, NewLogger[Swap](logging.NoLog{}, "swap")))
	require.ErrorIs(NotifyAll[Swap](ctx, e, failing, buf), errFailed)
	require.Equal([]Swap{e, e}, buf.Events())

	require.NoError(CloseAll[Swap](failing, buf))
	require.True(buf.Closed())
}

func TestBufferLimit(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	buf := NewBuffer[Swap](2)
	for i := uint64(1); i <= 3; i++ {
		require.NoError(buf.Accept(ctx, Swap{Input: i}))
	}
	require.Equal([]Swap{{Input: 2}, {Input: 3}}, buf.Events())
}
