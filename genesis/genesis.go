// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/ledger"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
	"github.com/eyovvalupe/pump.fun-Raydium/storage"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

type CustomAllocation struct {
	Address codec.Address `json:"address"`
	Balance uint64        `json:"balance"`
}

type Genesis struct {
	CustomAllocation []*CustomAllocation `json:"customAllocation"`
	Rules            *Rules              `json:"rules"`
}

func NewDefaultGenesis(treasury codec.Address, customAllocations []*CustomAllocation) *Genesis {
	rules := NewDefaultRules()
	rules.Treasury = treasury
	return &Genesis{
		CustomAllocation: customAllocations,
		Rules:            rules,
	}
}

// Load parses a JSON genesis. Rules missing from the file take their default
// values.
func Load(b []byte) (*Genesis, error) {
	g := &Genesis{Rules: NewDefaultRules()}
	if err := json.Unmarshal(b, g); err != nil {
		return nil, err
	}
	if err := g.Rules.Verify(); err != nil {
		return nil, err
	}
	return g, nil
}

func LoadFile(path string) (*Genesis, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(b)
}

// InitializeState credits every allocation in native currency.
func (g *Genesis) InitializeState(ctx context.Context, mu state.Mutable) error {
	supply := uint64(0)
	for _, alloc := range g.CustomAllocation {
		var err error
		supply, err = smath.Add(supply, alloc.Balance)
		if err != nil {
			return err
		}
		if err := ledger.Credit(ctx, mu, storage.NativeAsset, alloc.Address, alloc.Balance); err != nil {
			return fmt.Errorf("%w: addr=%s, bal=%d", err, alloc.Address, alloc.Balance)
		}
	}
	return nil
}

func (g *Genesis) Marshal() ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}
