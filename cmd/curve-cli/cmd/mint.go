// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eyovvalupe/pump.fun-Raydium/utils"
)

var mintCmd = &cobra.Command{
	Use: "mint",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var createMintCmd = &cobra.Command{
	Use:   "create [name] [symbol] <uri>",
	Short: "Issues a token and credits its supply to the actor",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) < 2 || len(args) > 3 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		creator, err := actorAddress()
		if err != nil {
			return err
		}
		uri := ""
		if len(args) == 3 {
			uri = args[2]
		}
		mint, err := handler.VM().CreateMint(cmd.Context(), creator, args[0], args[1], uri)
		if err != nil {
			return err
		}
		utils.Outf("{{green}}created mint:{{/}} %s\n", mint)
		return nil
	},
}

var mintInfoCmd = &cobra.Command{
	Use:   "info [mint]",
	Short: "Prints the metadata of a mint",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		mintAddr, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		m, err := handler.VM().GetMint(cmd.Context(), mintAddr)
		if err != nil {
			return err
		}
		utils.Outf(
			"{{yellow}}name:{{/}} %s {{yellow}}symbol:{{/}} %s {{yellow}}decimals:{{/}} %d {{yellow}}supply:{{/}} %s\n",
			m.Name,
			m.Symbol,
			m.Decimals,
			utils.FormatBalance(m.Supply, m.Decimals),
		)
		utils.Outf("{{yellow}}creator:{{/}} %s {{yellow}}uri:{{/}} %s\n", m.Creator, m.URI)
		return nil
	},
}
