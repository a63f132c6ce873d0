// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/utils"
)

var poolCmd = &cobra.Command{
	Use: "pool",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

func parsePoolArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return ErrInvalidArgs
	}
	return nil
}

func poolAddresses(args []string) (codec.Address, codec.Address, error) {
	amm, err := parseAddress(args[0])
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, err
	}
	mint, err := parseAddress(args[1])
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, err
	}
	return amm, mint, nil
}

var createPoolCmd = &cobra.Command{
	Use:     "create [amm] [mint]",
	Short:   "Pairs a mint with an Amm",
	PreRunE: parsePoolArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		creator, err := actorAddress()
		if err != nil {
			return err
		}
		amm, mint, err := poolAddresses(args)
		if err != nil {
			return err
		}
		pool, err := handler.VM().CreatePool(cmd.Context(), creator, amm, mint)
		if err != nil {
			return err
		}
		utils.Outf("{{green}}created pool{{/}} {{yellow}}authority:{{/}} %s\n", pool.Authority())
		return nil
	},
}

var poolInfoCmd = &cobra.Command{
	Use:     "info [amm] [mint]",
	Short:   "Prints the reserves of a pool",
	PreRunE: parsePoolArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		amm, mint, err := poolAddresses(args)
		if err != nil {
			return err
		}
		pool, err := handler.VM().GetPool(cmd.Context(), amm, mint)
		if err != nil {
			return err
		}
		a, err := handler.VM().GetAmm(cmd.Context(), amm)
		if err != nil {
			return err
		}
		reserveAsset, reserveCurrency, err := handler.VM().Reserves(cmd.Context(), amm, mint)
		if err != nil {
			return err
		}
		utils.Outf("{{yellow}}authority:{{/}} %s {{yellow}}status:{{/}} %s\n", pool.Authority(), a.Status)
		utils.Outf(
			"{{yellow}}reserve asset:{{/}} %s {{yellow}}reserve currency:{{/}} %s\n",
			formatToken(reserveAsset),
			formatNative(reserveCurrency),
		)
		return nil
	},
}
