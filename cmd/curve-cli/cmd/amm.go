// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"crypto/rand"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/utils"
)

var ammCmd = &cobra.Command{
	Use: "amm",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var createAmmCmd = &cobra.Command{
	Use:   "create [options]",
	Short: "Registers an Amm",
	RunE: func(cmd *cobra.Command, _ []string) error {
		creator, err := actorAddress()
		if err != nil {
			return err
		}
		var id ids.ID
		if len(ammID) > 0 {
			id, err = ids.FromString(ammID)
			if err != nil {
				return err
			}
		} else if _, err := rand.Read(id[:]); err != nil {
			return err
		}
		admin := codec.EmptyAddress
		if len(ammAdmin) > 0 {
			admin, err = parseAddress(ammAdmin)
			if err != nil {
				return err
			}
		}
		fee := handler.VM().Rules().GetDefaultFee()
		if cmd.Flags().Changed("fee") {
			fee = ammFee
		}
		amm, err := handler.VM().CreateAmm(cmd.Context(), creator, id, admin, fee)
		if err != nil {
			return err
		}
		utils.Outf(
			"{{green}}created amm:{{/}} %s {{yellow}}id:{{/}} %s {{yellow}}fee:{{/}} %d bps\n",
			amm.ID,
			id,
			amm.Fee,
		)
		return nil
	},
}

var ammInfoCmd = &cobra.Command{
	Use:   "info [amm]",
	Short: "Prints an Amm",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ammAddr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		amm, err := handler.VM().GetAmm(cmd.Context(), ammAddr)
		if err != nil {
			return err
		}
		utils.Outf(
			"{{yellow}}amm:{{/}} %s {{yellow}}admin:{{/}} %s {{yellow}}fee:{{/}} %d bps {{yellow}}status:{{/}} %s\n",
			amm.ID,
			amm.Admin,
			amm.Fee,
			amm.Status,
		)
		return nil
	},
}
