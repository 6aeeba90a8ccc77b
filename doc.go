// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package some provides value-semantic type erasure with small-buffer
// storage.
//
// A container of interface I holds one value of any concrete type T whose
// pointer implements I. The container owns the value: copying the container
// copies the value, moving it transfers ownership, resetting it destroys the
// value. Small values are stored inside the container; larger ones live in a
// heap cell the container owns.
//
// # Design Philosophy
//
// some provides:
//   - Structural binding: T never declares that it implements I
//   - One adapter per (interface, concrete type) pair, built once and cached
//   - Lifecycle through an explicit capability record, never through
//     assignment of erased memory
//   - Configuration at the type level: the configuration type is the buffer
//
// # Containers
//
// Two front-ends share one contract:
//
//   - [Box]: general purpose. Moves go through the adapter and land inline
//     when the destination can hold the value; only other heap values
//     change owner by pointer exchange.
//   - [Fat]: move optimized. Its state is a fat pointer; moves steal the
//     two words unless the value sits in the source's own buffer, in which
//     case it spills into the destination.
//
// Construction and assignment:
//
//   - [New], [NewFat], [MustNew], [MustNewFat]: Bind a value at construction
//   - [Bind]: Replace the held value
//   - [Box.CopyFrom], [Box.MoveFrom], [Box.Clone]: Transfer between
//     containers of the same interface, whatever their configurations
//   - [Box.Reset]: Destroy the held value
//
// Access:
//
//   - [Box.Get]: Hot-path access (precondition: not empty)
//   - [Box.Interface]: Checked access returning [ErrEmpty]
//
// # Configuration
//
// A configuration is a pointer-free type implementing [Config]. Its size is
// the inline capacity and [Options] select the capability requirements:
//
//   - Copy: bound values must be copyable (not embedding [NoCopy])
//   - Move: bound values must be movable (not embedding [NoMove])
//   - EmptyState: the container may hold nothing
//   - CheckEmpty: empty access panics with [ErrEmpty]
//   - Recycle: heap cells are pooled per concrete type
//
// Predefined: [Default], [Compact], [Wide], [Heap], [Strict], [Unique].
//
// A value is stored inline iff it fits the buffer's size and alignment, holds
// no Go pointers, and is movable. [Eligible] evaluates the rule.
//
// # Capabilities
//
//   - [Cloner]: deep copy on container copies
//   - [Dropper]: called exactly once when an owned value is destroyed
//   - [NoCopy], [NoMove]: capability markers
//   - [Adapt]: forwarding glue for types that do not implement I themselves
//
// # Handles
//
//   - [Ptr]: two-word {adapter, data} handle; [PtrTo] borrows, [Own] owns,
//     [Ptr.Steal] transfers both words
//   - [View]: copyable non-owning reference; [ViewOf], [Borrow]
//
// # Downcasts
//
// Downcasts compare the exact concrete type:
//
//   - [TryGet]: Pointer or nil
//   - [CastPtr]: Pointer or error
//   - [Cast], [MustCast]: Copy, failing with [ErrTypeMismatch]
//   - [Take]: Move the value out, leaving the container empty
//   - [As]: View the held value through another interface
//
// # Concurrency
//
// Containers are plain values. Concurrent use of one container needs the
// same synchronization as concurrent use of the held value.
//
// # Example
//
//	type Shape interface {
//		Sides() int
//		Bump()
//	}
//
//	type Square struct{ side int }
//
//	func (*Square) Sides() int { return 4 }
//	func (s *Square) Bump()    { s.side++ }
//
//	b := some.MustNew[Shape, some.Default](Square{})
//	b.Get().Bump()
//	sq := some.TryGet[Square](&b) // sq.side == 1
package some
