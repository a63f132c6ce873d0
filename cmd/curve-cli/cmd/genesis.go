// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eyovvalupe/pump.fun-Raydium/genesis"
	"github.com/eyovvalupe/pump.fun-Raydium/utils"
)

var genesisCmd = &cobra.Command{
	Use: "genesis",
	// Generating a genesis does not open the database.
	PersistentPreRunE: func(*cobra.Command, []string) error {
		return nil
	},
	PersistentPostRunE: func(*cobra.Command, []string) error {
		return nil
	},
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var genGenesisCmd = &cobra.Command{
	Use:   "generate [options]",
	Short: "Creates a new genesis in the default location",
	RunE: func(*cobra.Command, []string) error {
		treasuryAddr, err := parseAddress(treasury)
		if err != nil {
			return err
		}
		allocs := make([]*genesis.CustomAllocation, 0, len(allocations))
		for _, a := range allocations {
			saddr, samount, ok := strings.Cut(a, "=")
			if !ok {
				return ErrInvalidArgs
			}
			addr, err := parseAddress(saddr)
			if err != nil {
				return err
			}
			amount, err := parseNative(samount)
			if err != nil {
				return err
			}
			allocs = append(allocs, &genesis.CustomAllocation{Address: addr, Balance: amount})
		}
		g := genesis.NewDefaultGenesis(treasuryAddr, allocs)
		if err := g.Rules.Verify(); err != nil {
			return err
		}
		b, err := g.Marshal()
		if err != nil {
			return err
		}
		if err := os.WriteFile(genesisFile, b, fsModeWrite); err != nil {
			return err
		}
		utils.Outf("{{green}}created genesis and saved to %s{{/}}\n", genesisFile)
		return nil
	},
}
