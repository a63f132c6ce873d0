// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pricing

import (
	"github.com/holiman/uint256"

	"github.com/eyovvalupe/pump.fun-Raydium/fixedpoint"
)

var _ Model = (*BondingCurve)(nil)

// BondingCurve is a constant product curve whose currency side is padded
// with a virtual reserve. The virtual reserve lets the first trade of an
// empty pool have a finite price. It is never held by the pool.
type BondingCurve struct {
	reserveAsset    uint64
	reserveCurrency uint64
	virtualReserve  uint64
}

func NewBondingCurve(
	reserveAsset uint64,
	reserveCurrency uint64,
	virtualReserve uint64,
) (*BondingCurve, error) {
	if virtualReserve == 0 {
		return nil, ErrVirtualReserveZero
	}
	return &BondingCurve{
		reserveAsset:    reserveAsset,
		reserveCurrency: reserveCurrency,
		virtualReserve:  virtualReserve,
	}, nil
}

// SellBase returns floor(input * (Rc + V) / (Ra + input)).
func (c *BondingCurve) SellBase(input uint64) (uint64, error) {
	currency, err := fixedpoint.Add(c.reserveCurrency, c.virtualReserve)
	if err != nil {
		return 0, err
	}
	asset, err := fixedpoint.Add(c.reserveAsset, input)
	if err != nil {
		return 0, err
	}
	return fixedpoint.MulDiv(input, currency, asset)
}

// BuyBase returns floor(input * Ra / (Rc + V + input)).
func (c *BondingCurve) BuyBase(input uint64) (uint64, error) {
	currency, err := fixedpoint.Add(c.reserveCurrency, c.virtualReserve)
	if err != nil {
		return 0, err
	}
	currency, err = fixedpoint.Add(currency, input)
	if err != nil {
		return 0, err
	}
	return fixedpoint.MulDiv(input, c.reserveAsset, currency)
}

func (c *BondingCurve) Quote(input uint64, sellBase bool) (uint64, error) {
	if sellBase {
		return c.SellBase(input)
	}
	return c.BuyBase(input)
}

func (c *BondingCurve) Swap(input uint64, sellBase bool) (uint64, error) {
	output, err := c.Quote(input, sellBase)
	if err != nil {
		return 0, err
	}
	var asset, currency uint64
	if sellBase {
		asset, err = fixedpoint.Add(c.reserveAsset, input)
		if err == nil {
			currency, err = fixedpoint.Sub(c.reserveCurrency, output)
		}
	} else {
		currency, err = fixedpoint.Add(c.reserveCurrency, input)
		if err == nil {
			asset, err = fixedpoint.Sub(c.reserveAsset, output)
		}
	}
	if err != nil {
		return 0, err
	}
	c.reserveAsset, c.reserveCurrency = asset, currency
	return output, nil
}

func (c *BondingCurve) GetState() (uint64, uint64) {
	return c.reserveAsset, c.reserveCurrency
}

// Product returns Ra * (Rc + V) at full width.
func (c *BondingCurve) Product() *uint256.Int {
	currency := new(uint256.Int).Add(uint256.NewInt(c.reserveCurrency), uint256.NewInt(c.virtualReserve))
	return currency.Mul(currency, uint256.NewInt(c.reserveAsset))
}
