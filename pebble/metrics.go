// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

const (
	namespace       = "pebble"
	metricsInterval = 10 * time.Second
)

// sampled gauges are refreshed from [pebble.DB.Metrics] every
// [metricsInterval].
var sampled = []struct {
	name  string
	help  string
	value func(*pebble.Metrics) float64
}{
	{"tombstone_count", "approximate count of internal tombstones", func(m *pebble.Metrics) float64 {
		return float64(m.Keys.TombstoneCount)
	}},
	{"obsolete_table_size", "bytes in tables no longer referenced by the db", func(m *pebble.Metrics) float64 {
		return float64(m.Table.ObsoleteSize)
	}},
	{"zombie_table_size", "bytes in unreferenced tables still held by iterators", func(m *pebble.Metrics) float64 {
		return float64(m.Table.ZombieSize)
	}},
	{"obsolete_wal_size", "bytes in WAL files no longer needed by the db", func(m *pebble.Metrics) float64 {
		return float64(m.WAL.ObsoletePhysicalSize)
	}},
	{"disk_usage", "bytes used on disk", func(m *pebble.Metrics) float64 {
		return float64(m.DiskSpaceUsage())
	}},
	{"read_amp", "current read amplification", func(m *pebble.Metrics) float64 {
		return float64(m.ReadAmp())
	}},
}

type metrics struct {
	stallStart atomic.Time
	writeStall metric.Averager
	getLatency metric.Averager

	batches      prometheus.Counter
	batchBytes   prometheus.Counter
	flushes      prometheus.Counter
	compactions  *prometheus.CounterVec
	compacting   prometheus.Gauge
	sampledGauge []prometheus.Gauge
}

func newMetrics() (*prometheus.Registry, *metrics, error) {
	r := prometheus.NewRegistry()
	writeStall, err := metric.NewAverager(
		namespace+"_write_stall",
		"time spent with writes stalled",
		r,
	)
	if err != nil {
		return nil, nil, err
	}
	getLatency, err := metric.NewAverager(
		namespace+"_read_latency",
		"time spent in db get",
		r,
	)
	if err != nil {
		return nil, nil, err
	}
	m := &metrics{
		writeStall: writeStall,
		getLatency: getLatency,
		batches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches",
			Help:      "number of committed batches",
		}),
		batchBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_bytes",
			Help:      "bytes of keys and values in committed batches",
		}),
		flushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flushes",
			Help:      "number of memtable flushes",
		}),
		compactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compactions",
			Help:      "number of compactions by input level",
		}, []string{"level"}),
		compacting: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_compactions",
			Help:      "number of running compactions",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.batches),
		r.Register(m.batchBytes),
		r.Register(m.flushes),
		r.Register(m.compactions),
		r.Register(m.compacting),
	)
	for _, s := range sampled {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      s.name,
			Help:      s.help,
		})
		m.sampledGauge = append(m.sampledGauge, g)
		errs.Add(r.Register(g))
	}
	return r, m, errs.Err
}

func (m *metrics) sample(pm *pebble.Metrics) {
	for i, s := range sampled {
		m.sampledGauge[i].Set(s.value(pm))
	}
}

func (d *Database) eventListener() *pebble.EventListener {
	return &pebble.EventListener{
		CompactionBegin: func(info pebble.CompactionInfo) {
			d.metrics.compacting.Inc()
			level := "other"
			if len(info.Input) > 0 && info.Input[0].Level == 0 {
				level = "l0"
			}
			d.metrics.compactions.WithLabelValues(level).Inc()
		},
		CompactionEnd: func(pebble.CompactionInfo) {
			d.metrics.compacting.Dec()
		},
		FlushEnd: func(pebble.FlushInfo) {
			d.metrics.flushes.Inc()
		},
		WriteStallBegin: func(pebble.WriteStallBeginInfo) {
			d.metrics.stallStart.Store(time.Now())
		},
		WriteStallEnd: func() {
			d.metrics.writeStall.Observe(float64(time.Since(d.metrics.stallStart.Load())))
		},
	}
}

func (d *Database) collectMetrics() {
	t := time.NewTicker(metricsInterval)
	defer t.Stop()

	for {
		select {
		case <-t.C:
			d.metrics.sample(d.db.Metrics())
		case <-d.closing:
			return
		}
	}
}
