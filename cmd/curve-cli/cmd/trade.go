// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/utils"
)

var fundCmd = &cobra.Command{
	Use:   "fund [address] [amount]",
	Short: "Credits native currency to an address",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 2 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		to, err := parseAddress(args[0])
		if err != nil {
			return err
		}
		amount, err := parseNative(args[1])
		if err != nil {
			return err
		}
		bal, err := handler.VM().Fund(cmd.Context(), to, amount)
		if err != nil {
			return err
		}
		utils.Outf("{{green}}funded{{/}} {{yellow}}balance:{{/}} %s\n", formatNative(bal))
		return nil
	},
}

var depositCmd = &cobra.Command{
	Use:   "deposit [amm] [mint] [amount]",
	Short: "Moves base asset from the actor into pool custody",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 3 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := actorAddress()
		if err != nil {
			return err
		}
		amm, mint, err := poolAddresses(args[:2])
		if err != nil {
			return err
		}
		amount, err := parseToken(args[2])
		if err != nil {
			return err
		}
		custody, err := handler.VM().Deposit(cmd.Context(), from, amm, mint, amount)
		if err != nil {
			return err
		}
		utils.Outf("{{green}}deposited{{/}} {{yellow}}reserve asset:{{/}} %s\n", formatToken(custody))
		return nil
	},
}

// parseInput reads an input amount in the asset being sold.
func parseInput(s string) (uint64, error) {
	if sellBase {
		return parseToken(s)
	}
	return parseNative(s)
}

func outputDecimals() uint8 {
	if sellBase {
		return consts.NativeDecimals
	}
	return consts.TokenDecimals
}

// formatOutput renders an amount of the asset being bought.
func formatOutput(v uint64) string {
	if sellBase {
		return formatNative(v)
	}
	return formatToken(v)
}

var swapCmd = &cobra.Command{
	Use:   "swap [amm] [mint] [input] [options]",
	Short: "Trades an exact input against a pool",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 3 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		trader, err := actorAddress()
		if err != nil {
			return err
		}
		amm, mint, err := poolAddresses(args[:2])
		if err != nil {
			return err
		}
		input, err := parseInput(args[2])
		if err != nil {
			return err
		}
		minOut, err := utils.ParseBalance(minOutput, outputDecimals())
		if err != nil {
			return err
		}
		r, err := handler.VM().SwapExactIn(cmd.Context(), trader, amm, mint, sellBase, input, minOut)
		if err != nil {
			return err
		}
		utils.Outf(
			"{{green}}swapped{{/}} {{yellow}}output:{{/}} %s {{yellow}}fee:{{/}} %s {{yellow}}received:{{/}} %s\n",
			formatOutput(r.Output),
			formatNative(r.Fee),
			formatOutput(r.Received),
		)
		return nil
	},
}

var quoteCmd = &cobra.Command{
	Use:   "quote [amm] [mint] [input] [options]",
	Short: "Prices a trade without executing it",
	PreRunE: func(_ *cobra.Command, args []string) error {
		if len(args) != 3 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		amm, mint, err := poolAddresses(args[:2])
		if err != nil {
			return err
		}
		input, err := parseInput(args[2])
		if err != nil {
			return err
		}
		q, err := handler.VM().Quote(cmd.Context(), amm, mint, sellBase, input)
		if err != nil {
			return err
		}
		cost := formatNative(q.Cost)
		if sellBase {
			cost = formatToken(q.Cost)
		}
		utils.Outf(
			"{{yellow}}output:{{/}} %s {{yellow}}fee:{{/}} %s {{yellow}}received:{{/}} %s {{yellow}}cost:{{/}} %s\n",
			formatOutput(q.Output),
			formatNative(q.Fee),
			formatOutput(q.Received),
			cost,
		)
		return nil
	},
}
