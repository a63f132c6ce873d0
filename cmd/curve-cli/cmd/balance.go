// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eyovvalupe/pump.fun-Raydium/storage"
	"github.com/eyovvalupe/pump.fun-Raydium/utils"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address] [options]",
	Short: "Prints the balance of an address",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		assetAddr := storage.NativeAsset
		if len(asset) > 0 {
			assetAddr, err = parseAddress(asset)
			if err != nil {
				return err
			}
		}
		bal, err := handler.VM().Balance(cmd.Context(), assetAddr, owner)
		if err != nil {
			return err
		}
		utils.Outf("{{yellow}}balance:{{/}} %s\n", formatAsset(assetAddr, bal))
		return nil
	},
}
