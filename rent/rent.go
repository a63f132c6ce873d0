// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rent computes the native balance an account must keep to stay
// alive.
package rent

//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE} -destination=mock_oracle.go . Oracle

const (
	AccountStorageOverhead = 128
	LamportsPerByteYear    = 3480
	ExemptionThreshold     = 2

	// AuthorityDataLen is the data length charged for a pool authority.
	AuthorityDataLen = 48
)

type Oracle interface {
	// MinimumBalance returns the smallest balance an account holding
	// [dataLen] bytes may be left with.
	MinimumBalance(dataLen uint64) uint64
}

// Schedule is an [Oracle] that charges per byte of data plus a fixed
// overhead.
type Schedule struct {
	Overhead      uint64 `json:"overhead"`
	PerByteYear   uint64 `json:"perByteYear"`
	ExemptionYear uint64 `json:"exemptionYears"`
}

var Default = Schedule{
	Overhead:      AccountStorageOverhead,
	PerByteYear:   LamportsPerByteYear,
	ExemptionYear: ExemptionThreshold,
}

func (s Schedule) MinimumBalance(dataLen uint64) uint64 {
	return (s.Overhead + dataLen) * s.PerByteYear * s.ExemptionYear
}

// Free is an [Oracle] with no floor.
type Free struct{}

func (Free) MinimumBalance(uint64) uint64 {
	return 0
}
