// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/config"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/event"
	"github.com/eyovvalupe/pump.fun-Raydium/genesis"
	"github.com/eyovvalupe/pump.fun-Raydium/pebble"
	"github.com/eyovvalupe/pump.fun-Raydium/storage"
	"github.com/eyovvalupe/pump.fun-Raydium/trace"
	"github.com/eyovvalupe/pump.fun-Raydium/utils"
	"github.com/eyovvalupe/pump.fun-Raydium/vm"
)

type Handler struct {
	log       logging.Logger
	vm        *vm.VM
	gatherers prometheus.Gatherers
}

func NewHandler(ctx context.Context, cfg *config.Config) (*Handler, error) {
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	g, err := genesis.LoadFile(cfg.GenesisPath)
	if err != nil {
		return nil, fmt.Errorf("unable to load genesis %s: %w", cfg.GenesisPath, err)
	}
	db, gatherers, err := openDatabase(log, cfg)
	if err != nil {
		return nil, err
	}
	tracer, err := trace.New(cfg.Trace)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	v, registry, err := vm.New(ctx, log, db, g,
		vm.WithNamespace(cfg.MetricsNamespace),
		vm.WithTracer(tracer),
		vm.WithSwapSubscriptions(event.NewLogger[event.Swap](log, "swap committed")),
		vm.WithGraduationSubscriptions(
			event.NewLogger[event.Graduation](log, "pool graduated"),
			event.Func[event.Graduation](printGraduation),
		),
	)
	if err != nil {
		_ = tracer.Close()
		_ = db.Close()
		return nil, err
	}
	return &Handler{
		log:       log,
		vm:        v,
		gatherers: append(gatherers, registry),
	}, nil
}

func printGraduation(_ context.Context, g event.Graduation) error {
	utils.Outf(
		"{{cyan}}pool graduated{{/}} {{yellow}}asset swept:{{/}} %s {{yellow}}currency swept:{{/}} %s {{yellow}}bonus:{{/}} %s {{yellow}}treasury:{{/}} %s\n",
		formatToken(g.AssetSwept),
		formatNative(g.CurrencySwept),
		formatNative(g.Bonus),
		g.Treasury,
	)
	return nil
}

func openDatabase(log logging.Logger, cfg *config.Config) (database.Database, prometheus.Gatherers, error) {
	switch cfg.DatabaseBackend {
	case config.MemDB:
		return memdb.New(), nil, nil
	case config.PebbleDB:
		db, registry, err := pebble.New(log, cfg.DatabasePath, cfg.Pebble)
		if err != nil {
			return nil, nil, err
		}
		return db, prometheus.Gatherers{registry}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.DatabaseBackend)
	}
}

func (h *Handler) VM() *vm.VM {
	return h.vm
}

// Close logs the collected metrics and closes the VM.
func (h *Handler) Close() error {
	families, err := h.gatherers.Gather()
	if err != nil {
		h.log.Warn("unable to gather metrics", zap.Error(err))
	}
	for _, f := range families {
		h.log.Debug("metric",
			zap.String("name", f.GetName()),
			zap.Int("series", len(f.GetMetric())),
		)
	}
	err = h.vm.Close()
	h.log.Stop()
	return err
}

func parseAddress(s string) (codec.Address, error) {
	addr, err := codec.StringToAddress(s)
	if err != nil {
		return codec.EmptyAddress, fmt.Errorf("%w: %s: %w", ErrInvalidAddress, s, err)
	}
	return addr, nil
}

func parseNative(s string) (uint64, error) {
	return utils.ParseBalance(s, consts.NativeDecimals)
}

func parseToken(s string) (uint64, error) {
	return utils.ParseBalance(s, consts.TokenDecimals)
}

func formatNative(v uint64) string {
	return utils.FormatBalance(v, consts.NativeDecimals)
}

func formatToken(v uint64) string {
	return utils.FormatBalance(v, consts.TokenDecimals)
}

// formatAsset renders [v] with the decimals of [asset].
func formatAsset(asset codec.Address, v uint64) string {
	if asset == storage.NativeAsset {
		return formatNative(v)
	}
	return formatToken(v)
}
