// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"crypto/rand"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/utils"
)

var keyCmd = &cobra.Command{
	Use: "key",
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

var genKeyCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a new account address",
	RunE: func(*cobra.Command, []string) error {
		var id ids.ID
		if _, err := rand.Read(id[:]); err != nil {
			return err
		}
		addr := codec.CreateAddress(consts.AccountID, id)
		utils.Outf("{{green}}created address:{{/}} %s\n", addr)
		return nil
	},
}
