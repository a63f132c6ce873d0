// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
)

var _ database.Batch = (*batch)(nil)

type op struct {
	key    []byte
	value  []byte
	delete bool
}

// batch buffers writes in a pebble batch and keeps its own list of
// operations so the batch can be replayed.
type batch struct {
	db    *Database
	batch *pebble.Batch
	ops   []op
	size  int
}

func (b *batch) Put(key []byte, value []byte) error {
	b.ops = append(b.ops, op{
		key:   append([]byte{}, key...),
		value: append([]byte{}, value...),
	})
	b.size += len(key) + len(value)
	return b.batch.Set(key, value, nil)
}

func (b *batch) Delete(key []byte) error {
	b.ops = append(b.ops, op{
		key:    append([]byte{}, key...),
		delete: true,
	})
	b.size += len(key)
	return b.batch.Delete(key, nil)
}

func (b *batch) Size() int {
	return b.size
}

// Write commits every buffered operation at once.
func (b *batch) Write() error {
	if b.db.isClosed() {
		return database.ErrClosed
	}
	if err := b.batch.Commit(b.db.writeOptions); err != nil {
		return err
	}
	b.db.metrics.batches.Inc()
	b.db.metrics.batchBytes.Add(float64(b.size))
	// A committed pebble batch cannot be reused.
	if err := b.batch.Close(); err != nil {
		return err
	}
	b.batch = b.db.db.NewBatch()
	b.ops = b.ops[:0]
	b.size = 0
	return nil
}

func (b *batch) Reset() {
	b.batch.Reset()
	b.ops = b.ops[:0]
	b.size = 0
}

func (b *batch) Replay(w database.KeyValueWriterDeleter) error {
	for _, op := range b.ops {
		var err error
		if op.delete {
			err = w.Delete(op.key)
		} else {
			err = w.Put(op.key, op.value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *batch) Inner() database.Batch {
	return b
}
