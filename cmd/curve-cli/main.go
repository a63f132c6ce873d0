// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "curve-cli" operates bonding-curve launch pools on a local database.
package main

import (
	"os"

	"github.com/eyovvalupe/pump.fun-Raydium/cmd/curve-cli/cmd"
	"github.com/eyovvalupe/pump.fun-Raydium/utils"
)

func main() {
	if err := cmd.Execute(); err != nil {
		utils.Outf("{{red}}curve-cli exited with error:{{/}} %+v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
