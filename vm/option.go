// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/trace"

	"github.com/eyovvalupe/pump.fun-Raydium/event"
	"github.com/eyovvalupe/pump.fun-Raydium/ledger"
)

const defaultNamespace = "curvevm"

type Option func(*VM)

// WithLedger replaces the default state ledger.
func WithLedger(l ledger.Ledger) Option {
	return func(vm *VM) {
		vm.ledger = l
	}
}

func WithNamespace(namespace string) Option {
	return func(vm *VM) {
		vm.namespace = namespace
	}
}

func WithSwapSubscriptions(subs ...event.Subscription[event.Swap]) Option {
	return func(vm *VM) {
		vm.swapSubs = append(vm.swapSubs, subs...)
	}
}

func WithGraduationSubscriptions(subs ...event.Subscription[event.Graduation]) Option {
	return func(vm *VM) {
		vm.graduationSubs = append(vm.graduationSubs, subs...)
	}
}

// WithTracer opens a span around every call. The VM closes [tracer].
func WithTracer(tracer trace.Tracer) Option {
	return func(vm *VM) {
		vm.tracer = tracer
	}
}
