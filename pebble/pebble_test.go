// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func newDB(t testing.TB, cfg Config) *Database {
	db, _, err := New(logging.NoLog{}, t.TempDir(), cfg)
	require.NoError(t, err)
	return db
}

func TestGetPutDelete(t *testing.T) {
	require := require.New(t)
	db := newDB(t, NewDefaultConfig())

	_, err := db.Get([]byte("k"))
	require.ErrorIs(err, database.ErrNotFound)
	has, err := db.Has([]byte("k"))
	require.NoError(err)
	require.False(has)

	require.NoError(db.Put([]byte("k"), []byte("v")))
	v, err := db.Get([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)

	require.NoError(db.Delete([]byte("k")))
	has, err = db.Has([]byte("k"))
	require.NoError(err)
	require.False(has)

	_, err = db.HealthCheck(context.Background())
	require.NoError(err)

	require.NoError(db.Close())
	require.ErrorIs(db.Close(), database.ErrClosed)
	_, err = db.Get([]byte("k"))
	require.ErrorIs(err, database.ErrClosed)
}

func TestBatch(t *testing.T) {
	require := require.New(t)
	db := newDB(t, NewDefaultConfig())
	defer db.Close()

	require.NoError(db.Put([]byte("old"), []byte("v")))

	b := db.NewBatch()
	require.NoError(b.Put([]byte("a"), []byte("1")))
	require.NoError(b.Put([]byte("b"), []byte("2")))
	require.NoError(b.Delete([]byte("old")))
	require.Equal(7, b.Size())

	// Nothing is visible before the batch is written.
	has, err := db.Has([]byte("a"))
	require.NoError(err)
	require.False(has)

	replayed := memdb.New()
	require.NoError(replayed.Put([]byte("old"), []byte("v")))
	require.NoError(b.Replay(replayed))

	require.NoError(b.Write())
	require.Zero(b.Size())

	for _, k := range []string{"a", "b", "old"} {
		want, wantErr := replayed.Get([]byte(k))
		got, err := db.Get([]byte(k))
		require.ErrorIs(err, wantErr)
		require.Equal(want, got)
	}

	// The batch can be reused after a write.
	require.NoError(b.Put([]byte("c"), []byte("3")))
	b.Reset()
	require.NoError(b.Write())
	has, err = db.Has([]byte("c"))
	require.NoError(err)
	require.False(has)
}

func TestMetrics(t *testing.T) {
	require := require.New(t)
	db, registry, err := New(logging.NoLog{}, t.TempDir(), NewDefaultConfig())
	require.NoError(err)
	defer db.Close()

	b := db.NewBatch()
	require.NoError(b.Put([]byte("k"), []byte("value")))
	require.NoError(b.Write())
	require.Equal(1.0, testutil.ToFloat64(db.metrics.batches))
	require.Equal(6.0, testutil.ToFloat64(db.metrics.batchBytes))

	families, err := registry.Gather()
	require.NoError(err)
	names := make(map[string]struct{}, len(families))
	for _, f := range families {
		names[f.GetName()] = struct{}{}
	}
	for _, s := range sampled {
		require.Contains(names, namespace+"_"+s.name)
	}
}

func TestIterator(t *testing.T) {
	require := require.New(t)
	db := newDB(t, NewDefaultConfig())
	defer db.Close()

	for _, k := range []string{"a1", "a2", "a3", "b1", "b2"} {
		require.NoError(db.Put([]byte(k), []byte("v"+k)))
	}

	collect := func(it database.Iterator) []string {
		defer it.Release()
		var keys []string
		for it.Next() {
			keys = append(keys, string(it.Key()))
			require.Equal("v"+string(it.Key()), string(it.Value()))
		}
		require.NoError(it.Error())
		return keys
	}

	require.Equal([]string{"a1", "a2", "a3", "b1", "b2"}, collect(db.NewIterator()))
	require.Equal([]string{"a2", "a3", "b1", "b2"}, collect(db.NewIteratorWithStart([]byte("a2"))))
	require.Equal([]string{"b1", "b2"}, collect(db.NewIteratorWithPrefix([]byte("b"))))
	require.Equal([]string{"a3"}, collect(db.NewIteratorWithStartAndPrefix([]byte("a3"), []byte("a"))))
	require.Empty(collect(db.NewIteratorWithPrefix([]byte("c"))))

	require.NoError(db.Compact(nil, nil))
}

func TestPersistence(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	db, _, err := New(logging.NoLog{}, dir, NewDefaultConfig())
	require.NoError(err)
	require.NoError(db.Put([]byte("k"), []byte("v")))
	require.NoError(db.Close())

	db, _, err = New(logging.NoLog{}, dir, NewDefaultConfig())
	require.NoError(err)
	defer db.Close()
	v, err := db.Get([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)
}

func TestPrefixUpperBound(t *testing.T) {
	require := require.New(t)
	require.Nil(prefixUpperBound(nil))
	require.Equal([]byte{0x02}, prefixUpperBound([]byte{0x01}))
	require.Equal([]byte{0x02}, prefixUpperBound([]byte{0x01, 0xff}))
	require.Nil(prefixUpperBound([]byte{0xff, 0xff}))
}

const batchSize = 100_000

func randBytes() []byte {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

func BenchmarkBatchInsertion(b *testing.B) {
	for _, sync := range []bool{false, true} {
		b.Run(fmt.Sprintf("sync=%t", sync), func(b *testing.B) {
			// Setup DB
			b.StopTimer()
			cfg := NewDefaultConfig()
			cfg.Sync = sync
			db := newDB(b, cfg)

			// Setup keys
			keys := make([][]byte, batchSize)
			for i := 0; i < batchSize; i++ {
				keys[i] = randBytes()
			}

			b.StartTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				batch := db.NewBatch()
				for j := 0; j < batchSize; j++ {
					if err := batch.Put(keys[j], randBytes()); err != nil {
						b.Fatal(err)
					}
				}
				if err := batch.Write(); err != nil {
					b.Fatal(err)
				}
			}
			b.StopTimer()

			if err := db.Close(); err != nil {
				b.Fatal(err)
			}
		})
	}
}
