// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some

import (
	"reflect"
	"unsafe"
)

// Fat is the move-optimized container of interface I, configured by C.
//
// Its state is a fat pointer: the adapter of the held value and the value's
// address. Moving a Fat whose value lives on the heap transfers the two words
// and never calls the adapter. Only a value stored in the source's own inline
// buffer has to be relocated: it spills into the destination, inline if it
// fits there, into a fresh heap cell otherwise.
//
// Fat shares Box's rules for the zero value and the unbound state. Like a
// Box, a Fat holding a value must not be copied by assignment unless it was
// just returned by NewFat, MustNewFat or Clone, or has only been bound since.
type Fat[I any, C Config] struct {
	self   *Fat[I, C]
	buf    C
	ptr    Ptr[I]
	inline bool
}

// NewFat returns a Fat holding v.
func NewFat[I any, C Config, T any](v T) (Fat[I, C], error) {
	var f Fat[I, C]
	err := f.bind(infoOf[T](), unsafe.Pointer(&v))
	return f, err
}

// MustNewFat is like NewFat but panics on error.
func MustNewFat[I any, C Config, T any](v T) Fat[I, C] {
	f, err := NewFat[I, C](v)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Fat[I, C]) check() {
	if f.self == nil {
		f.self = f
	} else if f.self != f {
		panic(copied)
	}
}

func (f *Fat[I, C]) verify() {
	if f.self != nil && f.self != f {
		panic(copied)
	}
}

func (f *Fat[I, C]) target(l *layout) target {
	return target{buf: unsafe.Pointer(&f.buf), sbo: l.sbo, recycle: l.opts.Recycle}
}

func (f *Fat[I, C]) addr() unsafe.Pointer {
	if f.inline {
		return unsafe.Pointer(&f.buf)
	}
	return f.ptr.data
}

// set installs the slot of a value that landed at loc. The data word of an
// inline value is left nil; it is derived from the buffer on access.
func (f *Fat[I, C]) set(p Ptr[I], loc location) {
	f.ptr = p
	f.inline = loc == inline
	if f.inline {
		f.ptr.data = nil
	}
}

func (f *Fat[I, C]) adopt(ti *typeInfo, v unsafe.Pointer) error {
	f.verify()
	return f.bind(ti, v)
}

func (f *Fat[I, C]) bind(ti *typeInfo, v unsafe.Pointer) error {
	l := layoutOf[C]()
	vt, err := bindable[I](l, ti)
	if err != nil {
		return err
	}
	f.clear(l)
	at := vt.place(f.target(l))
	vt.assign(at.addr, v)
	f.set(Ptr[I]{vt: vt, data: at.addr}, at.loc)
	recordPlacement(kindFat, opBind, at.loc)
	return nil
}

func (f *Fat[I, C]) clear(l *layout) {
	if f.ptr.vt == nil {
		return
	}
	loc := f.location()
	f.ptr.vt.cleanup(loc, f.addr(), l.opts.Recycle)
	recordRelease(kindFat, loc)
	f.ptr, f.inline = Ptr[I]{}, false
}

func (f *Fat[I, C]) location() location {
	switch {
	case f.ptr.vt == nil:
		return vacant
	case f.inline:
		return inline
	default:
		return heap
	}
}

// Get returns the held value as I.
//
// Precondition: the Fat is not empty. If C sets CheckEmpty, an empty Fat
// panics with ErrEmpty; otherwise it panics with a nil dereference.
func (f *Fat[I, C]) Get() I {
	if f.ptr.vt == nil {
		checkEmpty[C]()
	}
	if f.inline {
		return f.ptr.vt.bind(unsafe.Pointer(&f.buf))
	}
	return f.ptr.vt.bind(f.ptr.data)
}

// Interface returns the held value as I, or ErrEmpty.
func (f *Fat[I, C]) Interface() (I, error) {
	if f.ptr.vt == nil {
		var zero I
		return zero, ErrEmpty
	}
	return f.ptr.vt.bind(f.addr()), nil
}

// Empty reports whether the Fat holds no value.
func (f *Fat[I, C]) Empty() bool { return f.ptr.vt == nil }

// Inline reports whether the held value is stored in the Fat itself.
func (f *Fat[I, C]) Inline() bool { return f.inline }

// Type returns the concrete type of the held value, or nil if empty.
func (f *Fat[I, C]) Type() reflect.Type { return f.ptr.Type() }

// Reset destroys the held value and leaves the Fat empty.
func (f *Fat[I, C]) Reset() {
	f.check()
	f.clear(layoutOf[C]())
}

// Clone returns an independent copy of f.
func (f *Fat[I, C]) Clone() (Fat[I, C], error) {
	f.check()
	var c Fat[I, C]
	err := c.copyFrom(f)
	return c, err
}

// CopyFrom destroys the value held by f and replaces it with an independent
// copy of the value held by src. On error f is left unchanged.
func (f *Fat[I, C]) CopyFrom(src Source[I]) error {
	f.check()
	if s, ok := src.(*Fat[I, C]); ok && s == f {
		return nil
	}
	return f.copyFrom(src)
}

func (f *Fat[I, C]) copyFrom(src Source[I]) error {
	l := layoutOf[C]()
	vt := src.adapter()
	if vt == nil {
		return f.fromEmpty(l)
	}
	if err := transferable(l, vt, true); err != nil {
		return err
	}
	_, p := src.erased()
	f.clear(l)
	at := vt.copyInto(f.target(l), p)
	f.set(Ptr[I]{vt: vt, data: at.addr}, at.loc)
	recordPlacement(kindFat, opCopy, at.loc)
	return nil
}

// MoveFrom destroys the value held by f and moves the value held by src into
// it, leaving src empty. On error both containers are left unchanged.
func (f *Fat[I, C]) MoveFrom(src Source[I]) error {
	f.check()
	if s, ok := src.(*Fat[I, C]); ok && s == f {
		return nil
	}
	src.claim()
	l := layoutOf[C]()
	vt := src.adapter()
	if vt == nil {
		return f.fromEmpty(l)
	}
	if err := transferable(l, vt, false); err != nil {
		return err
	}
	f.clear(l)
	f.set(src.surrender(f.target(l)))
	return nil
}

func (f *Fat[I, C]) fromEmpty(l *layout) error {
	if l.err != nil {
		return l.err
	}
	if !l.opts.EmptyState {
		return ErrEmpty
	}
	f.clear(l)
	return nil
}

func (f *Fat[I, C]) claim() { f.check() }

// surrender steals the slot of a heap-resident value and spills an inline one.
func (f *Fat[I, C]) surrender(t target) (Ptr[I], location) {
	if !f.inline {
		var p Ptr[I]
		f.ptr.steal(&p)
		return p, heap
	}
	p, loc := f.ptr.vt.spillInto(t, unsafe.Pointer(&f.buf))
	recordPlacement(kindFat, opSpill, loc)
	f.ptr, f.inline = Ptr[I]{}, false
	return p, loc
}

func (f *Fat[I, C]) adapter() *actions[I] { return f.ptr.vt }

func (f *Fat[I, C]) erased() (*typeInfo, unsafe.Pointer) {
	if f.ptr.vt == nil {
		return nil, nil
	}
	return f.ptr.vt.typeInfo, f.addr()
}

func (f *Fat[I, C]) vacate() {
	f.check()
	switch loc := f.location(); loc {
	case vacant:
		return
	case inline:
		f.ptr.vt.zero(unsafe.Pointer(&f.buf))
		recordRelease(kindFat, loc)
	case heap:
		f.ptr.vt.releaseCell(f.ptr.data, layoutOf[C]().opts.Recycle)
		recordRelease(kindFat, loc)
	}
	f.ptr, f.inline = Ptr[I]{}, false
}
