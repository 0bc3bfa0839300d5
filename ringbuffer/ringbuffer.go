// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ringbuffer implements a fixed-capacity circular FIFO buffer
// that is safe for one or more producers and consumers.
package ringbuffer

import (
	"sync"

	"github.com/pkg/errors"
)

// ErrInvalidCapacity is returned by New for a capacity below one.
var ErrInvalidCapacity = errors.New("ring buffer capacity must be positive")

// Buffer holds up to Cap() values. Once full, a write overwrites the
// oldest value.
type Buffer[T any] struct {
	mu     sync.Mutex
	buffer []T
	head   int // next slot to read
	tail   int // next slot to write
	empty  bool
	full   bool
}

// New creates an empty buffer holding at most capacity values.
func New[T any](capacity int) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity %d", capacity)
	}
	return &Buffer[T]{
		buffer: make([]T, capacity),
		empty:  true,
	}, nil
}

func (b *Buffer[T]) next(index int) int {
	return (index + 1) % len(b.buffer)
}

// Write appends value. If the buffer is already full the oldest value is
// dropped to make room.
func (b *Buffer[T]) Write(value T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	overwrite := b.full
	b.buffer[b.tail] = value
	b.tail = b.next(b.tail)
	if overwrite {
		b.head = b.tail
	}

	if b.head == b.tail {
		b.full = true
	}
	b.empty = false
}

// Read removes and returns the oldest value. The boolean is false, and the
// value is T's zero value, when the buffer is empty.
func (b *Buffer[T]) Read() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var zero T
	if b.empty {
		return zero, false
	}

	value := b.buffer[b.head]
	b.buffer[b.head] = zero
	b.head = b.next(b.head)

	b.full = false
	if b.head == b.tail {
		b.empty = true
	}
	return value, true
}

// Size is the number of values waiting to be read.
func (b *Buffer[T]) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case b.full:
		return len(b.buffer)
	case b.tail >= b.head:
		return b.tail - b.head
	default:
		return len(b.buffer) - (b.head - b.tail)
	}
}

// Cap is the fixed capacity chosen at construction.
func (b *Buffer[T]) Cap() int {
	return len(b.buffer)
}

// IsEmpty reports whether there is nothing to read.
func (b *Buffer[T]) IsEmpty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.empty
}

// IsFull reports whether the next write will overwrite the oldest value.
func (b *Buffer[T]) IsFull() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.full
}
