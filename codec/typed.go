// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// Typed is implemented by every action and action output.
type Typed interface {
	GetTypeID() uint8
}
