// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some

import (
	"reflect"
	"unsafe"
)

// Box is the general-purpose value-semantic container of interface I,
// configured by C.
//
// A Box holds at most one value. Values that fit the inline buffer of C are
// stored in the Box itself; others live in a heap cell owned by the Box.
// Copying and moving go through the adapter of the held value, so boxes of
// the same interface but different configurations exchange values freely.
//
// The zero Box is empty. When C disallows the empty state, a zero or
// moved-from Box is unbound: only Bind, CopyFrom, MoveFrom and Reset may be
// called on it.
//
// A Box that holds a value must not be copied by assignment: the copy and
// the original would share one value and destroy it twice. The only copies
// allowed are of a Box returned by New, MustNew or Clone, or of one that has
// only been bound since. Use Clone or CopyFrom to duplicate a value. Once
// a Box has been reset, assigned from or moved from, a by-value copy of it
// panics on its next mutation; a copy made before that cannot be detected.
type Box[I any, C Config] struct {
	self *Box[I, C]
	buf  C
	cell cell[I]
}

// New returns a Box holding v.
func New[I any, C Config, T any](v T) (Box[I, C], error) {
	var b Box[I, C]
	err := b.bind(infoOf[T](), unsafe.Pointer(&v))
	return b, err
}

// MustNew is like New but panics on error.
func MustNew[I any, C Config, T any](v T) Box[I, C] {
	b, err := New[I, C](v)
	if err != nil {
		panic(err)
	}
	return b
}

// check anchors b at its address on first use and panics if b has since
// been copied by value.
func (b *Box[I, C]) check() {
	if b.self == nil {
		b.self = b
	} else if b.self != b {
		panic(copied)
	}
}

// verify is check without anchoring, so that a Box bound and then returned
// by value stays usable.
func (b *Box[I, C]) verify() {
	if b.self != nil && b.self != b {
		panic(copied)
	}
}

func (b *Box[I, C]) target(l *layout) target {
	return target{buf: unsafe.Pointer(&b.buf), sbo: l.sbo, recycle: l.opts.Recycle}
}

func (b *Box[I, C]) addr() unsafe.Pointer {
	return b.cell.addr(unsafe.Pointer(&b.buf))
}

func (b *Box[I, C]) adopt(ti *typeInfo, v unsafe.Pointer) error {
	b.verify()
	return b.bind(ti, v)
}

func (b *Box[I, C]) bind(ti *typeInfo, v unsafe.Pointer) error {
	l := layoutOf[C]()
	vt, err := bindable[I](l, ti)
	if err != nil {
		return err
	}
	b.clear(l)
	at := vt.place(b.target(l))
	vt.assign(at.addr, v)
	b.cell.set(vt, at.loc, at.addr)
	recordPlacement(kindBox, opBind, at.loc)
	return nil
}

func (b *Box[I, C]) clear(l *layout) {
	b.cell.clear(unsafe.Pointer(&b.buf), l.opts.Recycle, kindBox)
}

// Get returns the held value as I.
//
// Precondition: the Box is not empty. If C sets CheckEmpty, an empty Box
// panics with ErrEmpty; otherwise it panics with a nil dereference.
func (b *Box[I, C]) Get() I {
	if b.cell.vt == nil {
		checkEmpty[C]()
	}
	return b.cell.vt.bind(b.addr())
}

// Interface returns the held value as I, or ErrEmpty.
func (b *Box[I, C]) Interface() (I, error) {
	if b.cell.vt == nil {
		var zero I
		return zero, ErrEmpty
	}
	return b.cell.vt.bind(b.addr()), nil
}

// Empty reports whether the Box holds no value.
func (b *Box[I, C]) Empty() bool { return b.cell.loc == vacant }

// Inline reports whether the held value is stored in the Box itself.
func (b *Box[I, C]) Inline() bool { return b.cell.loc == inline }

// Type returns the concrete type of the held value, or nil if empty.
func (b *Box[I, C]) Type() reflect.Type {
	if b.cell.vt == nil {
		return nil
	}
	return b.cell.vt.typ
}

// Reset destroys the held value and leaves the Box empty.
func (b *Box[I, C]) Reset() {
	b.check()
	b.clear(layoutOf[C]())
}

// Clone returns an independent copy of b.
func (b *Box[I, C]) Clone() (Box[I, C], error) {
	b.check()
	var c Box[I, C]
	err := c.copyFrom(b)
	return c, err
}

// CopyFrom destroys the value held by b and replaces it with an independent
// copy of the value held by src. On error b is left unchanged.
func (b *Box[I, C]) CopyFrom(src Source[I]) error {
	b.check()
	if s, ok := src.(*Box[I, C]); ok && s == b {
		return nil
	}
	return b.copyFrom(src)
}

func (b *Box[I, C]) copyFrom(src Source[I]) error {
	l := layoutOf[C]()
	vt := src.adapter()
	if vt == nil {
		return b.fromEmpty(l)
	}
	if err := transferable(l, vt, true); err != nil {
		return err
	}
	_, p := src.erased()
	b.clear(l)
	at := vt.copyInto(b.target(l), p)
	b.cell.set(vt, at.loc, at.addr)
	recordPlacement(kindBox, opCopy, at.loc)
	return nil
}

// MoveFrom destroys the value held by b and moves the value held by src into
// it, leaving src empty. The value lands inline in b whenever it is eligible
// for b's buffer; a heap-resident value that is not changes owner without
// being relocated. On error both containers are left unchanged.
func (b *Box[I, C]) MoveFrom(src Source[I]) error {
	b.check()
	if s, ok := src.(*Box[I, C]); ok && s == b {
		return nil
	}
	src.claim()
	l := layoutOf[C]()
	vt := src.adapter()
	if vt == nil {
		return b.fromEmpty(l)
	}
	if err := transferable(l, vt, false); err != nil {
		return err
	}
	b.clear(l)
	p, loc := src.surrender(b.target(l))
	b.cell.set(p.vt, loc, p.data)
	return nil
}

// fromEmpty handles a transfer from an empty source.
func (b *Box[I, C]) fromEmpty(l *layout) error {
	if l.err != nil {
		return l.err
	}
	if !l.opts.EmptyState {
		return ErrEmpty
	}
	b.clear(l)
	return nil
}

func (b *Box[I, C]) claim() { b.check() }

// surrender relocates the held value into t, or hands over its heap cell
// when the value does not fit there.
func (b *Box[I, C]) surrender(t target) (Ptr[I], location) {
	vt := b.cell.vt
	at, moved := vt.relocate(t, b.addr(), b.cell.loc, layoutOf[C]().opts.Recycle)
	if moved {
		recordPlacement(kindBox, opMove, at.loc)
	}
	b.cell = cell[I]{}
	return Ptr[I]{vt: vt, data: at.addr}, at.loc
}

func (b *Box[I, C]) adapter() *actions[I] { return b.cell.vt }

func (b *Box[I, C]) erased() (*typeInfo, unsafe.Pointer) {
	if b.cell.vt == nil {
		return nil, nil
	}
	return b.cell.vt.typeInfo, b.addr()
}

func (b *Box[I, C]) vacate() {
	b.check()
	b.cell.forget(unsafe.Pointer(&b.buf), layoutOf[C]().opts.Recycle, kindBox)
}
