// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package vm serializes calls into the curve engine and commits each
// successful call to a database in a single batch.
package vm

import (
	"context"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/eyovvalupe/pump.fun-Raydium/actions"
	"github.com/eyovvalupe/pump.fun-Raydium/chain"
	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/event"
	"github.com/eyovvalupe/pump.fun-Raydium/genesis"
	"github.com/eyovvalupe/pump.fun-Raydium/ledger"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
	"github.com/eyovvalupe/pump.fun-Raydium/storage"
	"github.com/eyovvalupe/pump.fun-Raydium/tstate"
	"github.com/eyovvalupe/pump.fun-Raydium/utils"

	ctrace "github.com/eyovvalupe/pump.fun-Raydium/trace"
)

type VM struct {
	log       logging.Logger
	db        database.Database
	rules     *genesis.Rules
	ledger    ledger.Ledger
	namespace string
	metrics   *Metrics
	tracer    trace.Tracer

	swapSubs       []event.Subscription[event.Swap]
	graduationSubs []event.Subscription[event.Graduation]

	// mu serializes every call so no two read-modify-write sequences on
	// the same pool interleave.
	mu     sync.Mutex
	closed bool
}

// New opens a VM on [db]. An empty database is initialized from [g]; a
// database initialized from another genesis is rejected.
func New(
	ctx context.Context,
	log logging.Logger,
	db database.Database,
	g *genesis.Genesis,
	options ...Option,
) (*VM, *prometheus.Registry, error) {
	if err := g.Rules.Verify(); err != nil {
		return nil, nil, err
	}
	vm := &VM{
		log:       log,
		db:        db,
		rules:     g.Rules,
		ledger:    ledger.StateLedger{},
		namespace: defaultNamespace,
		tracer:    ctrace.Noop(consts.Name),
	}
	for _, option := range options {
		option(vm)
	}
	registry, metrics, err := newMetrics(vm.namespace)
	if err != nil {
		return nil, nil, err
	}
	vm.metrics = metrics
	if err := vm.initialize(ctx, g); err != nil {
		return nil, nil, err
	}
	return vm, registry, nil
}

func (vm *VM) initialize(ctx context.Context, g *genesis.Genesis) error {
	b, err := g.Marshal()
	if err != nil {
		return err
	}
	genesisID := utils.ToID(b)
	stored, ok, err := storage.GetGenesisID(vm.db)
	if err != nil {
		return err
	}
	if ok {
		if stored != genesisID {
			return ErrGenesisMismatch
		}
		vm.log.Info("loaded existing state", zap.Stringer("genesis", genesisID))
		return nil
	}

	view := tstate.NewView(state.NewDatabaseStorage(vm.db), nil)
	if err := g.InitializeState(ctx, view); err != nil {
		view.Discard()
		return err
	}
	batch := vm.db.NewBatch()
	if err := view.Write(batch); err != nil {
		return err
	}
	if err := storage.SetGenesisID(batch, genesisID); err != nil {
		return err
	}
	if err := batch.Write(); err != nil {
		return err
	}
	vm.log.Info("genesis state created",
		zap.Stringer("genesis", genesisID),
		zap.Int("allocations", len(g.CustomAllocation)),
	)
	return nil
}

func (vm *VM) Rules() *genesis.Rules {
	return vm.rules
}

// execute runs [action] and commits its changes. The caller must hold
// [vm.mu].
func (vm *VM) execute(
	ctx context.Context,
	name string,
	action chain.Action,
	actor codec.Address,
) (codec.Typed, error) {
	if vm.closed {
		return nil, ErrClosed
	}
	ctx, span := vm.tracer.Start(ctx, "VM.execute", oteltrace.WithAttributes(
		attribute.String("action", name),
		attribute.Stringer("actor", actor),
	))
	defer span.End()

	start := time.Now()
	batch := vm.db.NewBatch()
	output, changes, err := chain.Execute(
		ctx,
		action,
		vm.rules,
		vm.ledger,
		state.NewDatabaseStorage(vm.db),
		batch,
		actor,
	)
	vm.metrics.execute.Observe(float64(time.Since(start)))
	if err != nil {
		vm.metrics.failedActions.WithLabelValues(name).Inc()
		vm.log.Debug("action failed",
			zap.String("action", name),
			zap.Stringer("actor", actor),
			zap.Error(err),
		)
		return nil, err
	}
	if err := batch.Write(); err != nil {
		vm.metrics.failedActions.WithLabelValues(name).Inc()
		vm.log.Warn("unable to commit action",
			zap.String("action", name),
			zap.Stringer("actor", actor),
			zap.Error(err),
		)
		return nil, err
	}
	vm.metrics.actions.Inc()
	vm.metrics.stateChanges.Add(float64(changes))
	vm.log.Debug("action committed",
		zap.String("action", name),
		zap.Stringer("actor", actor),
		zap.Int("changes", changes),
	)
	return output, nil
}

func (vm *VM) CreateAmm(
	ctx context.Context,
	actor codec.Address,
	id ids.ID,
	admin codec.Address,
	fee uint16,
) (*storage.Amm, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	output, err := vm.execute(ctx, "create_amm", &actions.CreateAmm{ID: id, Admin: admin, Fee: fee}, actor)
	if err != nil {
		return nil, err
	}
	return output.(*actions.CreateAmmResult).Amm, nil
}

func (vm *VM) CreatePool(
	ctx context.Context,
	actor codec.Address,
	amm codec.Address,
	mint codec.Address,
) (*storage.Pool, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	output, err := vm.execute(ctx, "create_pool", &actions.CreatePool{Amm: amm, Mint: mint}, actor)
	if err != nil {
		return nil, err
	}
	return output.(*actions.CreatePoolResult).Pool, nil
}

// CreateMint issues a token owned by [creator] and returns its address.
func (vm *VM) CreateMint(
	ctx context.Context,
	creator codec.Address,
	name string,
	symbol string,
	uri string,
) (codec.Address, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	output, err := vm.execute(ctx, "create_mint", &actions.CreateMint{Name: name, Symbol: symbol, URI: uri}, creator)
	if err != nil {
		return codec.EmptyAddress, err
	}
	return output.(*actions.CreateMintResult).Mint, nil
}

// Deposit moves [amount] of [mint] from [from] into the custody of the
// pool and returns the new custody balance.
func (vm *VM) Deposit(
	ctx context.Context,
	from codec.Address,
	amm codec.Address,
	mint codec.Address,
	amount uint64,
) (uint64, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	output, err := vm.execute(ctx, "deposit", &actions.Deposit{Amm: amm, Mint: mint, Amount: amount}, from)
	if err != nil {
		return 0, err
	}
	return output.(*actions.DepositResult).ReserveAsset, nil
}

func (vm *VM) Fund(ctx context.Context, to codec.Address, amount uint64) (uint64, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	output, err := vm.execute(ctx, "fund", &actions.Fund{To: to, Amount: amount}, to)
	if err != nil {
		return 0, err
	}
	return output.(*actions.FundResult).Balance, nil
}

// SwapExactIn trades [input] against the pool ([amm], [mint]). Events are
// delivered only once the swap is committed.
func (vm *VM) SwapExactIn(
	ctx context.Context,
	trader codec.Address,
	amm codec.Address,
	mint codec.Address,
	sellBase bool,
	input uint64,
	minOutput uint64,
) (*actions.SwapResult, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.closed {
		return nil, ErrClosed
	}
	// The creator's balance is part of the swap's declared keys, so it is
	// resolved from the pool's mint before the swap runs.
	m, err := vm.poolMint(ctx, amm, mint)
	if err != nil {
		vm.metrics.failedActions.WithLabelValues("swap").Inc()
		return nil, err
	}
	output, err := vm.execute(ctx, "swap", &actions.Swap{
		Amm:       amm,
		Mint:      mint,
		Creator:   m.Creator,
		SellBase:  sellBase,
		Input:     input,
		MinOutput: minOutput,
	}, trader)
	if err != nil {
		return nil, err
	}
	r := output.(*actions.SwapResult)

	vm.metrics.swaps.Inc()
	if sellBase {
		vm.metrics.volume.Add(float64(r.Output))
	} else {
		vm.metrics.volume.Add(float64(r.Input))
	}
	if err := event.NotifyAll(ctx, event.Swap{
		Amm:      r.Amm,
		Mint:     r.Mint,
		Trader:   r.Trader,
		SellBase: r.SellBase,
		Input:    r.Input,
		Output:   r.Output,
		Fee:      r.Fee,
	}, vm.swapSubs...); err != nil {
		vm.log.Warn("swap subscriber failed", zap.Error(err))
	}
	if !r.Graduated {
		return r, nil
	}

	vm.metrics.graduations.Inc()
	vm.log.Info("pool graduated",
		zap.Stringer("amm", amm),
		zap.Stringer("mint", mint),
		zap.Uint64("assetSwept", r.Graduation.AssetSwept),
		zap.Uint64("currencySwept", r.Graduation.CurrencySwept),
		zap.Uint64("bonus", r.Graduation.Bonus),
	)
	if err := event.NotifyAll(ctx, event.Graduation{
		Amm:      amm,
		Mint:     mint,
		Treasury: vm.rules.GetTreasury(),
		Creator:  m.Creator,
		Result:   *r.Graduation,
	}, vm.graduationSubs...); err != nil {
		vm.log.Warn("graduation subscriber failed", zap.Error(err))
	}
	return r, nil
}

func (vm *VM) poolMint(ctx context.Context, amm codec.Address, mint codec.Address) (*storage.Mint, error) {
	im := state.NewDatabaseStorage(vm.db)
	pool, err := storage.GetPool(ctx, im, amm, mint)
	if err != nil {
		return nil, err
	}
	return storage.GetMint(ctx, im, pool.Mint)
}

// read runs [f] against the committed state.
func (vm *VM) read(f func(im state.Immutable) error) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.closed {
		return ErrClosed
	}
	return f(state.NewDatabaseStorage(vm.db))
}

func (vm *VM) GetAmm(ctx context.Context, amm codec.Address) (*storage.Amm, error) {
	var a *storage.Amm
	err := vm.read(func(im state.Immutable) error {
		var err error
		a, err = storage.GetAmm(ctx, im, amm)
		return err
	})
	return a, err
}

func (vm *VM) GetPool(ctx context.Context, amm codec.Address, mint codec.Address) (*storage.Pool, error) {
	var p *storage.Pool
	err := vm.read(func(im state.Immutable) error {
		var err error
		p, err = storage.GetPool(ctx, im, amm, mint)
		return err
	})
	return p, err
}

func (vm *VM) GetMint(ctx context.Context, mint codec.Address) (*storage.Mint, error) {
	var m *storage.Mint
	err := vm.read(func(im state.Immutable) error {
		var err error
		m, err = storage.GetMint(ctx, im, mint)
		return err
	})
	return m, err
}

func (vm *VM) Balance(ctx context.Context, asset codec.Address, owner codec.Address) (uint64, error) {
	var bal uint64
	err := vm.read(func(im state.Immutable) error {
		var err error
		bal, err = vm.ledger.BalanceOf(ctx, im, asset, owner)
		return err
	})
	return bal, err
}

func (vm *VM) NativeBalance(ctx context.Context, owner codec.Address) (uint64, error) {
	var bal uint64
	err := vm.read(func(im state.Immutable) error {
		var err error
		bal, err = vm.ledger.NativeBalanceOf(ctx, im, owner)
		return err
	})
	return bal, err
}

// Quote prices a swap against the committed state without executing it.
func (vm *VM) Quote(
	ctx context.Context,
	amm codec.Address,
	mint codec.Address,
	sellBase bool,
	input uint64,
) (*actions.Quotation, error) {
	var q *actions.Quotation
	err := vm.read(func(im state.Immutable) error {
		var err error
		q, err = actions.Quote(ctx, vm.rules, vm.ledger, im, amm, mint, sellBase, input)
		return err
	})
	return q, err
}

// Reserves returns the custody balances of the pool ([amm], [mint]).
func (vm *VM) Reserves(
	ctx context.Context,
	amm codec.Address,
	mint codec.Address,
) (reserveAsset uint64, reserveCurrency uint64, err error) {
	err = vm.read(func(im state.Immutable) error {
		if _, err := storage.GetPool(ctx, im, amm, mint); err != nil {
			return err
		}
		authority := vm.ledger.Authority(ledger.AuthorityHandle{Amm: amm, Mint: mint})
		var err error
		reserveAsset, err = vm.ledger.BalanceOf(ctx, im, mint, authority)
		if err != nil {
			return err
		}
		reserveCurrency, err = vm.ledger.NativeBalanceOf(ctx, im, authority)
		return err
	})
	return reserveAsset, reserveCurrency, err
}

// Close closes every subscription and the database. It may be called once.
func (vm *VM) Close() error {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if vm.closed {
		return ErrClosed
	}
	vm.closed = true
	errs := wrappers.Errs{}
	errs.Add(
		event.CloseAll(vm.swapSubs...),
		event.CloseAll(vm.graduationSubs...),
		vm.tracer.Close(),
		vm.db.Close(),
	)
	return errs.Err
}
