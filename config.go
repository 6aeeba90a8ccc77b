// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some

import (
	"reflect"
	"sync"
	"unsafe"
)

// Options selects the capability requirements of a container type.
// Options are fixed per configuration type and read once.
type Options struct {
	// Align is the alignment of the inline buffer.
	// Zero selects the natural alignment of the configuration type.
	// A non-zero value must be a power of two that divides it.
	Align uintptr

	// Copy requires bound values to be copyable.
	Copy bool

	// Move requires bound values to be movable.
	Move bool

	// EmptyState allows the container to hold nothing.
	EmptyState bool

	// CheckEmpty makes Get panic with ErrEmpty on an empty container
	// instead of failing on a nil dereference.
	CheckEmpty bool

	// Recycle returns released heap cells to a per-type pool.
	Recycle bool
}

// Config is implemented by configuration types.
//
// The memory of a configuration type is the inline buffer of every container
// instantiated with it: unsafe.Sizeof(C{}) is the inline capacity. A
// configuration type must not hold Go pointers. Embed one of the BufferN
// types to size it:
//
//	type Tiny struct{ some.Buffer8 }
//
//	func (Tiny) Options() some.Options {
//		return some.Options{Copy: true, Move: true, EmptyState: true}
//	}
type Config interface {
	Options() Options
}

// Inline buffer building blocks.
type (
	Buffer8  [1]uint64
	Buffer16 [2]uint64
	Buffer24 [3]uint64
	Buffer32 [4]uint64
	Buffer48 [6]uint64
	Buffer64 [8]uint64
)

// Default is the general-purpose configuration: 24 bytes inline,
// copy and move required, empty state allowed.
type Default struct{ Buffer24 }

func (Default) Options() Options {
	return Options{Copy: true, Move: true, EmptyState: true}
}

// Compact keeps 16 bytes inline.
type Compact struct{ Buffer16 }

func (Compact) Options() Options {
	return Options{Copy: true, Move: true, EmptyState: true}
}

// Wide keeps 64 bytes inline.
type Wide struct{ Buffer64 }

func (Wide) Options() Options {
	return Options{Copy: true, Move: true, EmptyState: true}
}

// Heap never stores values inline.
type Heap struct{}

func (Heap) Options() Options {
	return Options{Copy: true, Move: true, EmptyState: true}
}

// Strict forbids the empty state and checks every access.
type Strict struct{ Buffer24 }

func (Strict) Options() Options {
	return Options{Copy: true, Move: true, CheckEmpty: true}
}

// Unique admits values that cannot be copied.
type Unique struct{ Buffer24 }

func (Unique) Options() Options {
	return Options{Move: true, EmptyState: true}
}

// sbo describes an inline buffer.
type sbo struct {
	size  uintptr
	align uintptr
}

// layout is the validated, cached view of a configuration type.
type layout struct {
	sbo  sbo
	opts Options
	err  error
}

var layouts sync.Map // reflect.Type -> *layout

func layoutOf[C Config]() *layout {
	t := reflect.TypeFor[C]()
	if v, ok := layouts.Load(t); ok {
		return v.(*layout)
	}
	var c C
	l := &layout{
		sbo:  sbo{size: unsafe.Sizeof(c), align: unsafe.Alignof(c)},
		opts: c.Options(),
	}
	switch {
	case !pointerFree(t):
		l.err = &ConfigError{Config: t, Reason: "buffer holds pointers"}
	case l.opts.Align != 0 && (l.opts.Align&(l.opts.Align-1) != 0 || l.sbo.align%l.opts.Align != 0):
		l.err = &ConfigError{Config: t, Reason: "alignment does not divide the buffer alignment"}
	case l.opts.Align != 0:
		l.sbo.align = l.opts.Align
	}
	v, _ := layouts.LoadOrStore(t, l)
	return v.(*layout)
}

// admit applies the configuration's capability gates to a concrete type.
func (l *layout) admit(ti *typeInfo) error {
	switch {
	case l.err != nil:
		return l.err
	case l.opts.Copy && !ti.copyable:
		return ErrNotCopyable
	case l.opts.Move && !ti.movable:
		return ErrNotMovable
	}
	return nil
}

// Eligible reports whether values of type T are stored inline by containers
// configured with C.
func Eligible[T any, C Config]() bool {
	l := layoutOf[C]()
	return l.err == nil && eligible(infoOf[T](), l.sbo)
}

// eligible is the inline placement predicate shared by both storage strategies.
func eligible(ti *typeInfo, s sbo) bool {
	return s.size > 0 &&
		ti.size <= s.size &&
		ti.align <= s.align &&
		s.align%ti.align == 0 &&
		ti.flat &&
		ti.movable
}
