// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/eyovvalupe/pump.fun-Raydium/config"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/utils"
)

// newLogger writes to stderr and, when a log directory is configured, to a
// rotated JSON file.
func newLogger(cfg *config.Config) (logging.Logger, error) {
	level, err := cfg.GetLogLevel()
	if err != nil {
		return nil, err
	}
	cores := []logging.WrappedCore{
		logging.NewWrappedCore(level, os.Stderr, logging.Colors.ConsoleEncoder()),
	}
	if len(cfg.LogDir) > 0 {
		dir, err := utils.InitSubDirectory(cfg.LogDir, consts.Name)
		if err != nil {
			return nil, err
		}
		rw := &lumberjack.Logger{
			Filename:   filepath.Join(dir, "curve-cli.log"),
			MaxSize:    cfg.LogMaxSize,  // megabytes
			MaxAge:     cfg.LogMaxAge,   // days
			MaxBackups: cfg.LogMaxFiles, // files
			Compress:   true,
		}
		cores = append(cores, logging.NewWrappedCore(level, rw, logging.JSON.FileEncoder()))
	}
	return logging.NewLogger("", cores...), nil
}
