// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some

import "unsafe"

// cell is the owning slot of the indirect strategy: the adapter of the held
// value and a tag saying whether the value sits in the container's buffer or
// in a heap cell. The inline address is never stored, so it cannot go stale.
type cell[I any] struct {
	vt   *actions[I]
	loc  location
	heap unsafe.Pointer
}

// addr returns the address of the held value given the owner's buffer.
func (c *cell[I]) addr(buf unsafe.Pointer) unsafe.Pointer {
	if c.loc == inline {
		return buf
	}
	return c.heap
}

// set records a value constructed or relocated by the action protocol.
func (c *cell[I]) set(vt *actions[I], loc location, addr unsafe.Pointer) {
	c.vt, c.loc, c.heap = vt, loc, nil
	if loc == heap {
		c.heap = addr
	}
}

// clear destroys the held value, if any.
func (c *cell[I]) clear(buf unsafe.Pointer, recycle bool, k containerKind) {
	if c.loc == vacant {
		return
	}
	c.vt.cleanup(c.loc, c.addr(buf), recycle)
	recordRelease(k, c.loc)
	*c = cell[I]{}
}

// forget empties the slot after its value has been moved out.
func (c *cell[I]) forget(buf unsafe.Pointer, recycle bool, k containerKind) {
	switch c.loc {
	case vacant:
		return
	case inline:
		c.vt.zero(buf)
	case heap:
		c.vt.releaseCell(c.heap, recycle)
	}
	recordRelease(k, c.loc)
	*c = cell[I]{}
}

// copied is the panic value of a container used after a by-value copy.
const copied = "some: illegal use of container copied by value"

// checkEmpty reports an empty access under C's policy. It returns only when
// C leaves empty access unchecked.
func checkEmpty[C Config]() {
	var c C
	if c.Options().CheckEmpty {
		panic(ErrEmpty)
	}
}

// bindable applies the checks every value passes before it is bound.
func bindable[I any](l *layout, ti *typeInfo) (*actions[I], error) {
	if ti.erased {
		return nil, bindError[I](ti, ErrPolymorphic)
	}
	if err := l.admit(ti); err != nil {
		return nil, bindError[I](ti, err)
	}
	return actionsFor[I](ti, owned)
}

// transferable applies the destination's checks to a value held by src.
func transferable[I any](l *layout, vt *actions[I], copying bool) error {
	if copying && !vt.copyable {
		return bindError[I](vt.typeInfo, ErrNotCopyable)
	}
	return bindError[I](vt.typeInfo, l.admit(vt.typeInfo))
}

// Bind destroys the value held by dst and binds v in its place.
// On error dst is left unchanged.
//
// Bind takes ownership of v. References held inside v are not cloned.
func Bind[T any](dst Sink, v T) error {
	return dst.adopt(infoOf[T](), unsafe.Pointer(&v))
}
