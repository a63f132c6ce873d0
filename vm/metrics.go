// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	actions       prometheus.Counter
	failedActions *prometheus.CounterVec
	stateChanges  prometheus.Counter
	swaps         prometheus.Counter
	graduations   prometheus.Counter
	volume        prometheus.Counter
	execute       metric.Averager
}

func newMetrics(namespace string) (*prometheus.Registry, *Metrics, error) {
	r := prometheus.NewRegistry()

	execute, err := metric.NewAverager(
		namespace+"_execute",
		"time spent executing an action",
		r,
	)
	if err != nil {
		return nil, nil, err
	}

	m := &Metrics{
		actions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions",
			Help:      "number of committed actions",
		}),
		failedActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failed_actions",
			Help:      "number of actions that failed and were discarded",
		}, []string{"action"}),
		stateChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_changes",
			Help:      "number of keys written by committed actions",
		}),
		swaps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "swaps",
			Help:      "number of committed swaps",
		}),
		graduations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graduations",
			Help:      "number of pools graduated",
		}),
		volume: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "volume",
			Help:      "native currency traded by committed swaps",
		}),
		execute: execute,
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.actions),
		r.Register(m.failedActions),
		r.Register(m.stateChanges),
		r.Register(m.swaps),
		r.Register(m.graduations),
		r.Register(m.volume),
	)
	return r, m, errs.Err
}
