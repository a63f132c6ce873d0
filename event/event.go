// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package event delivers committed swap and graduation events to
// subscribers.
package event

import (
	"context"
	"errors"
	"sync"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
)

var (
	_ Subscription[Swap] = Func[Swap](nil)
	_ Subscription[Swap] = (*Buffer[Swap])(nil)
	_ Subscription[Swap] = (*Logger[Swap])(nil)
)

// Subscription consumes events. Events are delivered only for calls that
// were committed, in commit order.
type Subscription[T any] interface {
	Accept(ctx context.Context, e T) error
	Close() error
}

// Func adapts a function to a [Subscription] with nothing to close.
type Func[T any] func(ctx context.Context, e T) error

func (f Func[T]) Accept(ctx context.Context, e T) error {
	return f(ctx, e)
}

func (Func[_]) Close() error {
	return nil
}

// Buffer keeps the last [limit] events it accepted.
type Buffer[T any] struct {
	limit int

	mu     sync.Mutex
	events []T
	closed bool
}

func NewBuffer[T any](limit int) *Buffer[T] {
	return &Buffer[T]{limit: limit}
}

func (b *Buffer[T]) Accept(_ context.Context, e T) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = append(b.events, e)
	if over := len(b.events) - b.limit; over > 0 {
		b.events = b.events[over:]
	}
	return nil
}

// Events returns a copy of the buffered events, oldest first.
func (b *Buffer[T]) Events() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]T(nil), b.events...)
}

func (b *Buffer[T]) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.closed
}

func (b *Buffer[T]) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	return nil
}

// Logger writes every event to a log at info level.
type Logger[T any] struct {
	log logging.Logger
	msg string
}

func NewLogger[T any](log logging.Logger, msg string) *Logger[T] {
	return &Logger[T]{log: log, msg: msg}
}

func (l *Logger[T]) Accept(_ context.Context, e T) error {
	l.log.Info(l.msg, zap.Any("event", e))
	return nil
}

func (*Logger[_]) Close() error {
	return nil
}

// NotifyAll delivers [e] to every subscriber, even when some fail.
func NotifyAll[T any](ctx context.Context, e T, subs ...Subscription[T]) error {
	var errs []error
	for _, sub := range subs {
		if err := sub.Accept(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CloseAll closes every subscriber.
func CloseAll[T any](subs ...Subscription[T]) error {
	var errs []error
	for _, sub := range subs {
		if err := sub.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
