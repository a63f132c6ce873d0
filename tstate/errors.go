// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tstate

import "errors"

var (
	// ErrKeyNotSpecified is returned for a key outside the scope of the view.
	ErrKeyNotSpecified = errors.New("key not in view scope")
	ErrInvalidKeyValue = errors.New("value exceeds key chunk limit")

	ErrAllocationDisabled = errors.New("key allocation not permitted")
	ErrWriteDisabled      = errors.New("key write not permitted")
	ErrReadDisabled       = errors.New("key read not permitted")

	ErrViewClosed = errors.New("view already written or discarded")
)
