// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/config"
	"github.com/eyovvalupe/pump.fun-Raydium/utils"
)

const (
	fsModeWrite    = 0o600
	defaultConfig  = "curve-cli.yaml"
	defaultGenesis = "genesis.json"
)

var (
	handler *Handler
	cfg     *config.Config

	configPath  string
	dbPath      string
	genesisFile string
	actor       string

	// genesis
	treasury    string
	allocations []string

	// amm
	ammID    string
	ammAdmin string
	ammFee   uint16

	// swap
	sellBase  bool
	minOutput string

	// balance
	asset string

	rootCmd = &cobra.Command{
		Use:        "curve-cli",
		Short:      "Bonding-curve launch pool CLI",
		SuggestFor: []string{"curve-cli", "curvecli"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		genesisCmd,
		keyCmd,
		mintCmd,
		ammCmd,
		poolCmd,
		fundCmd,
		depositCmd,
		swapCmd,
		quoteCmd,
		balanceCmd,
	)
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		defaultConfig,
		"path to config (defaults are used when missing)",
	)
	rootCmd.PersistentFlags().StringVar(
		&dbPath,
		"database",
		"",
		"path to database (overrides config)",
	)
	rootCmd.PersistentFlags().StringVar(
		&actor,
		"actor",
		"",
		"address of the account performing the action",
	)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.LoadFile(configPath)
		if err != nil {
			return err
		}
		if len(dbPath) > 0 {
			cfg.DatabasePath = dbPath
		}
		utils.Outf("{{yellow}}database:{{/}} %s (%s)\n", cfg.DatabasePath, cfg.DatabaseBackend)
		handler, err = NewHandler(cmd.Context(), cfg)
		return err
	}
	rootCmd.PersistentPostRunE = func(*cobra.Command, []string) error {
		err := handler.Close()
		handler = nil
		return err
	}
	rootCmd.SilenceErrors = true

	// genesis
	genGenesisCmd.PersistentFlags().StringVar(
		&genesisFile,
		"genesis-file",
		defaultGenesis,
		"genesis file path",
	)
	genGenesisCmd.PersistentFlags().StringVar(
		&treasury,
		"treasury",
		"",
		"treasury address receiving fees and graduation sweeps",
	)
	genGenesisCmd.PersistentFlags().StringSliceVar(
		&allocations,
		"alloc",
		[]string{},
		"native allocation as <address>=<amount>",
	)
	genesisCmd.AddCommand(
		genGenesisCmd,
	)

	// key
	keyCmd.AddCommand(
		genKeyCmd,
	)

	// mint
	mintCmd.AddCommand(
		createMintCmd,
		mintInfoCmd,
	)

	// amm
	createAmmCmd.PersistentFlags().StringVar(
		&ammID,
		"id",
		"",
		"amm id (random when empty)",
	)
	createAmmCmd.PersistentFlags().StringVar(
		&ammAdmin,
		"admin",
		"",
		"amm admin (defaults to the actor)",
	)
	createAmmCmd.PersistentFlags().Uint16Var(
		&ammFee,
		"fee",
		0,
		"fee in basis points (defaults to the genesis fee when unset)",
	)
	ammCmd.AddCommand(
		createAmmCmd,
		ammInfoCmd,
	)

	// pool
	poolCmd.AddCommand(
		createPoolCmd,
		poolInfoCmd,
	)

	// swap
	for _, c := range []*cobra.Command{swapCmd, quoteCmd} {
		c.PersistentFlags().BoolVar(
			&sellBase,
			"sell",
			false,
			"sell the base asset for native currency",
		)
	}
	swapCmd.PersistentFlags().StringVar(
		&minOutput,
		"min-output",
		"0",
		"minimum output before fees",
	)

	// balance
	balanceCmd.PersistentFlags().StringVar(
		&asset,
		"asset",
		"",
		"mint address (native currency when empty)",
	)
}

func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	// PersistentPostRunE is skipped when a command fails.
	if handler != nil {
		err = errors.Join(err, handler.Close())
		handler = nil
	}
	return err
}

func actorAddress() (codec.Address, error) {
	if len(actor) == 0 {
		return codec.EmptyAddress, ErrMissingActor
	}
	return parseAddress(actor)
}
