// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package pebble implements [database.Database] on top of
// github.com/cockroachdb/pebble.
package pebble

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/units"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var _ database.Database = (*Database)(nil)

type Config struct {
	CacheSize                   int64  `yaml:"cacheSize"`
	BytesPerSync                int    `yaml:"bytesPerSync"`
	WALBytesPerSync             int    `yaml:"walBytesPerSync"`
	MemTableStopWritesThreshold int    `yaml:"memTableStopWritesThreshold"`
	MemTableSize                uint64 `yaml:"memTableSize"`
	MaxOpenFiles                int    `yaml:"maxOpenFiles"`
	ConcurrentCompactions       int    `yaml:"concurrentCompactions"`

	// Sync makes every committed batch durable before Write returns.
	Sync bool `yaml:"sync"`
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:                   64 * units.MiB,
		BytesPerSync:                512 * units.KiB,
		WALBytesPerSync:             0, // don't sync WAL
		MemTableStopWritesThreshold: 8,
		MemTableSize:                16 * units.MiB,
		MaxOpenFiles:                4_096,
		ConcurrentCompactions:       1,
		Sync:                        true,
	}
}

type Database struct {
	log logging.Logger
	db  *pebble.DB

	writeOptions *pebble.WriteOptions

	closeOnce sync.Once
	closing   chan struct{}
	closed    sync.WaitGroup

	metrics *metrics
}

// New opens the database stored in [file]. The returned registry holds the
// database metrics.
func New(log logging.Logger, file string, cfg Config) (*Database, *prometheus.Registry, error) {
	// These default settings are based on https://github.com/ethereum/go-ethereum/blob/master/ethdb/pebble/pebble.go
	d := &Database{
		log:          log,
		writeOptions: pebble.NoSync,
		closing:      make(chan struct{}),
	}
	if cfg.Sync {
		d.writeOptions = pebble.Sync
	}
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}
	d.metrics = metrics

	cache := pebble.NewCache(cfg.CacheSize)
	defer cache.Unref()
	opts := &pebble.Options{
		Cache:                       cache,
		BytesPerSync:                cfg.BytesPerSync,
		WALBytesPerSync:             cfg.WALBytesPerSync,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MemTableSize:                cfg.MemTableSize,
		MaxOpenFiles:                cfg.MaxOpenFiles,
		MaxConcurrentCompactions:    func() int { return cfg.ConcurrentCompactions },
		Logger:                      &logger{log: log},
		EventListener:               d.eventListener(),
	}
	opts.Experimental.ReadSamplingMultiplier = -1 // explicitly disable seek compaction
	db, err := pebble.Open(file, opts)
	if err != nil {
		return nil, nil, err
	}
	d.db = db
	d.metrics.sample(db.Metrics())

	d.closed.Add(1)
	go func() {
		defer d.closed.Done()
		d.collectMetrics()
	}()
	log.Info("opened pebble database",
		zap.String("path", file),
		zap.Bool("sync", cfg.Sync),
	)
	return d, registry, nil
}

func (d *Database) isClosed() bool {
	select {
	case <-d.closing:
		return true
	default:
		return false
	}
}

func (d *Database) Has(key []byte) (bool, error) {
	_, err := d.Get(key)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Get returns a copy of the value stored under [key].
func (d *Database) Get(key []byte) ([]byte, error) {
	if d.isClosed() {
		return nil, database.ErrClosed
	}
	start := time.Now()
	defer func() {
		d.metrics.getLatency.Observe(float64(time.Since(start)))
	}()
	v, closer, err := d.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return append([]byte{}, v...), nil
}

func (d *Database) Put(key []byte, value []byte) error {
	if d.isClosed() {
		return database.ErrClosed
	}
	return d.db.Set(key, value, d.writeOptions)
}

func (d *Database) Delete(key []byte) error {
	if d.isClosed() {
		return database.ErrClosed
	}
	return d.db.Delete(key, d.writeOptions)
}

func (d *Database) NewBatch() database.Batch {
	return &batch{db: d, batch: d.db.NewBatch()}
}

func (d *Database) NewIterator() database.Iterator {
	return d.NewIteratorWithStartAndPrefix(nil, nil)
}

func (d *Database) NewIteratorWithStart(start []byte) database.Iterator {
	return d.NewIteratorWithStartAndPrefix(start, nil)
}

func (d *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	return d.NewIteratorWithStartAndPrefix(nil, prefix)
}

func (d *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	if d.isClosed() {
		return &iterator{err: database.ErrClosed}
	}
	opts := &pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	}
	if len(start) > 0 && (len(prefix) == 0 || string(start) > string(prefix)) {
		opts.LowerBound = start
	}
	it, err := d.db.NewIter(opts)
	if err != nil {
		return &iterator{err: err}
	}
	return &iterator{iter: it}
}

func (d *Database) Compact(start []byte, limit []byte) error {
	if d.isClosed() {
		return database.ErrClosed
	}
	if limit == nil {
		// pebble requires a bounded range.
		it, err := d.db.NewIter(&pebble.IterOptions{LowerBound: start})
		if err != nil {
			return err
		}
		if it.Last() {
			limit = append(append([]byte{}, it.Key()...), 0)
		}
		if err := it.Close(); err != nil {
			return err
		}
		if limit == nil {
			return nil
		}
	}
	return d.db.Compact(start, limit, true)
}

func (d *Database) HealthCheck(context.Context) (interface{}, error) {
	if d.isClosed() {
		return nil, database.ErrClosed
	}
	m := d.db.Metrics()
	return map[string]interface{}{
		"diskSpaceUsage": m.DiskSpaceUsage(),
		"readAmp":        m.ReadAmp(),
	}, nil
}

func (d *Database) Close() error {
	err := database.ErrClosed
	d.closeOnce.Do(func() {
		close(d.closing)
		d.closed.Wait()
		err = d.db.Close()
		d.log.Info("closed pebble database")
	})
	return err
}

// prefixUpperBound returns the smallest key greater than every key starting
// with [prefix], or nil when there is none.
func prefixUpperBound(prefix []byte) []byte {
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != 0xff {
			upper := append([]byte{}, prefix[:i+1]...)
			upper[i]++
			return upper
		}
	}
	return nil
}

var _ pebble.Logger = (*logger)(nil)

type logger struct {
	log logging.Logger
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

func (l *logger) Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.log.Fatal(msg)
	panic(msg)
}
