// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"fmt"

	"github.com/eyovvalupe/pump.fun-Raydium/chain"
	"github.com/eyovvalupe/pump.fun-Raydium/codec"
	"github.com/eyovvalupe/pump.fun-Raydium/consts"
	"github.com/eyovvalupe/pump.fun-Raydium/fees"
	"github.com/eyovvalupe/pump.fun-Raydium/graduation"
	"github.com/eyovvalupe/pump.fun-Raydium/ledger"
	"github.com/eyovvalupe/pump.fun-Raydium/pricing"
	"github.com/eyovvalupe/pump.fun-Raydium/state"
	"github.com/eyovvalupe/pump.fun-Raydium/storage"
)

var (
	_ codec.Typed  = (*SwapResult)(nil)
	_ chain.Action = (*Swap)(nil)
)

type SwapResult struct {
	Amm      codec.Address `json:"amm"`
	Mint     codec.Address `json:"mint"`
	Trader   codec.Address `json:"trader"`
	SellBase bool          `json:"sellBase"`

	// Input is the amount actually taken from the trader, after clamping.
	Input uint64 `json:"input"`
	// Output is the raw curve output, before fees.
	Output   uint64 `json:"output"`
	Fee      uint64 `json:"fee"`
	Received uint64 `json:"received"`

	// Reserves after the trade and before any graduation.
	ReserveAsset    uint64 `json:"reserveAsset"`
	ReserveCurrency uint64 `json:"reserveCurrency"`

	Graduated  bool               `json:"graduated"`
	Graduation *graduation.Result `json:"graduation,omitempty"`
}

func (*SwapResult) GetTypeID() uint8 {
	return consts.SwapID
}

// Swap trades an exact input against a pool. When [SellBase] is set the
// input is the base asset and the output native currency, otherwise the
// reverse. The fee is always charged in native currency.
type Swap struct {
	Amm  codec.Address `json:"amm"`
	Mint codec.Address `json:"mint"`

	// Creator must be the creator of [Mint]. It receives the graduation
	// bonus.
	Creator codec.Address `json:"creator"`

	SellBase  bool   `json:"sellBase"`
	Input     uint64 `json:"input"`
	MinOutput uint64 `json:"minOutput"`
}

func (*Swap) GetTypeID() uint8 {
	return consts.SwapID
}

func (s *Swap) StateKeys(rules chain.Rules, actor codec.Address) state.Keys {
	var (
		authority = storage.AuthorityAddress(s.Amm, s.Mint)
		treasury  = rules.GetTreasury()
		keys      = state.Keys{
			string(storage.AmmKey(s.Amm)):                              state.Write,
			string(storage.PoolKey(s.Amm, s.Mint)):                     state.Read,
			string(storage.MintKey(s.Mint)):                            state.Read,
			string(storage.BalanceKey(storage.NativeAsset, s.Creator)): state.All,
		}
	)
	for _, owner := range []codec.Address{actor, authority, treasury} {
		keys.Add(storage.BalanceKey(s.Mint, owner), state.All)
		keys.Add(storage.BalanceKey(storage.NativeAsset, owner), state.All)
	}
	return keys
}

func (s *Swap) Execute(
	ctx context.Context,
	rules chain.Rules,
	l ledger.Ledger,
	mu state.Mutable,
	actor codec.Address,
) (codec.Typed, error) {
	amm, pool, err := loadPool(ctx, mu, s.Amm, s.Mint)
	if err != nil {
		return nil, err
	}
	if amm.Locked() {
		return nil, ErrPoolLocked
	}
	mint, err := storage.GetMint(ctx, mu, s.Mint)
	if err != nil {
		return nil, err
	}
	if mint.Creator != s.Creator {
		return nil, fmt.Errorf("%w: expected %s", ErrCreatorMismatch, mint.Creator)
	}

	// Selling more than is held sells everything held.
	inputAsset := storage.NativeAsset
	if s.SellBase {
		inputAsset = s.Mint
	}
	held, err := l.BalanceOf(ctx, mu, inputAsset, actor)
	if err != nil {
		return nil, err
	}
	input := min(s.Input, held)

	var (
		h         = ledger.AuthorityHandle{Amm: s.Amm, Mint: s.Mint}
		authority = l.Authority(h)
		treasury  = rules.GetTreasury()
	)
	curve, err := newCurve(ctx, rules, l, mu, pool, authority)
	if err != nil {
		return nil, err
	}
	output, err := curve.Quote(input, s.SellBase)
	if err != nil {
		return nil, err
	}
	if output < s.MinOutput {
		return nil, fmt.Errorf("%w: %d < %d", ErrOutputTooSmall, output, s.MinOutput)
	}

	r := &SwapResult{
		Amm:      s.Amm,
		Mint:     s.Mint,
		Trader:   actor,
		SellBase: s.SellBase,
		Input:    input,
		Output:   output,
	}
	if s.SellBase {
		net, fee, err := fees.Split(output, amm.Fee)
		if err != nil {
			return nil, err
		}
		if err := l.Transfer(ctx, mu, s.Mint, actor, authority, input); err != nil {
			return nil, err
		}
		if err := l.TransferFromAuthority(ctx, mu, storage.NativeAsset, h, actor, net); err != nil {
			return nil, err
		}
		if err := l.TransferFromAuthority(ctx, mu, storage.NativeAsset, h, treasury, fee); err != nil {
			return nil, err
		}
		r.Fee, r.Received = fee, net
	} else {
		// The fee is charged on top of the input.
		_, fee, err := fees.Split(input, amm.Fee)
		if err != nil {
			return nil, err
		}
		if err := l.Transfer(ctx, mu, storage.NativeAsset, actor, authority, input); err != nil {
			return nil, err
		}
		if err := l.Transfer(ctx, mu, storage.NativeAsset, actor, treasury, fee); err != nil {
			return nil, err
		}
		if err := l.TransferFromAuthority(ctx, mu, s.Mint, h, actor, output); err != nil {
			return nil, err
		}
		r.Fee, r.Received = fee, output
	}

	// The curve tracks where the reserves must be after the trade. The
	// ledger must agree with it before graduation looks at them.
	product := curve.Product()
	if _, err := curve.Swap(input, s.SellBase); err != nil {
		return nil, err
	}
	if curve.Product().Lt(product) {
		return nil, ErrProductDecrease
	}
	r.ReserveAsset, err = l.BalanceOf(ctx, mu, s.Mint, authority)
	if err != nil {
		return nil, err
	}
	r.ReserveCurrency, err = l.NativeBalanceOf(ctx, mu, authority)
	if err != nil {
		return nil, err
	}
	if asset, currency := curve.GetState(); asset != r.ReserveAsset || currency != r.ReserveCurrency {
		return nil, fmt.Errorf(
			"%w: curve=(%d, %d) ledger=(%d, %d)",
			ErrReserveMismatch,
			asset,
			currency,
			r.ReserveAsset,
			r.ReserveCurrency,
		)
	}
	controller, err := graduation.New(
		l,
		rules.GetRent(),
		rules.GetVirtualReserve(),
		rules.GetGraduationMultiplier(),
		rules.GetGraduationBonus(),
		treasury,
	)
	if err != nil {
		return nil, err
	}
	if controller.Crossed(r.ReserveCurrency) {
		r.Graduation, err = controller.Graduate(ctx, mu, amm, pool)
		if err != nil {
			return nil, err
		}
		r.Graduated = true
	}
	return r, nil
}

// Quotation is the result of pricing a trade without executing it.
type Quotation struct {
	Output   uint64 `json:"output"`
	Fee      uint64 `json:"fee"`
	Received uint64 `json:"received"`
	// Cost is what the trader pays, fee included.
	Cost uint64 `json:"cost"`
}

// Quote prices [input] against the pool ([amm], [mint]) as [Swap] would,
// without clamping to any balance.
func Quote(
	ctx context.Context,
	rules chain.Rules,
	l ledger.Ledger,
	im state.Immutable,
	ammAddr codec.Address,
	mintAddr codec.Address,
	sellBase bool,
	input uint64,
) (*Quotation, error) {
	amm, pool, err := loadPool(ctx, im, ammAddr, mintAddr)
	if err != nil {
		return nil, err
	}
	if amm.Locked() {
		return nil, ErrPoolLocked
	}
	authority := l.Authority(ledger.AuthorityHandle{Amm: ammAddr, Mint: mintAddr})
	curve, err := newCurve(ctx, rules, l, im, pool, authority)
	if err != nil {
		return nil, err
	}
	output, err := curve.Quote(input, sellBase)
	if err != nil {
		return nil, err
	}
	q := &Quotation{Output: output, Cost: input}
	if sellBase {
		q.Received, q.Fee, err = fees.Split(output, amm.Fee)
		if err != nil {
			return nil, err
		}
		return q, nil
	}
	_, q.Fee, err = fees.Split(input, amm.Fee)
	if err != nil {
		return nil, err
	}
	q.Received = output
	q.Cost += q.Fee
	return q, nil
}

func loadPool(
	ctx context.Context,
	im state.Immutable,
	ammAddr codec.Address,
	mintAddr codec.Address,
) (*storage.Amm, *storage.Pool, error) {
	pool, err := storage.GetPool(ctx, im, ammAddr, mintAddr)
	if err != nil {
		return nil, nil, err
	}
	amm, err := storage.GetAmm(ctx, im, ammAddr)
	if err != nil {
		return nil, nil, err
	}
	return amm, pool, nil
}

func newCurve(
	ctx context.Context,
	rules chain.Rules,
	l ledger.Ledger,
	im state.Immutable,
	pool *storage.Pool,
	authority codec.Address,
) (*pricing.BondingCurve, error) {
	reserveAsset, err := l.BalanceOf(ctx, im, pool.Mint, authority)
	if err != nil {
		return nil, err
	}
	reserveCurrency, err := l.NativeBalanceOf(ctx, im, authority)
	if err != nil {
		return nil, err
	}
	return pricing.NewBondingCurve(reserveAsset, reserveCurrency, rules.GetVirtualReserve())
}
