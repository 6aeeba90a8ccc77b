// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some

import (
	"reflect"
	"unsafe"
)

// Ptr is a two-word handle over a value reached through a pointer: the
// adapter of the value's concrete type to I, and the value's address.
// Its size does not depend on the concrete type.
//
// A Ptr made by PtrTo borrows its value; one made by Own destroys it on
// Release. The zero Ptr is empty. Copying an owning Ptr by assignment
// duplicates ownership; transfer it with Steal instead.
type Ptr[I any] struct {
	vt   *actions[I]
	data unsafe.Pointer
}

// PtrTo returns a handle borrowing *p. A nil p yields the empty handle.
func PtrTo[I, T any](p *T) (Ptr[I], error) {
	return newPtr[I](p, borrowed)
}

// Own returns a handle taking ownership of *p. Release runs the value's
// Drop method, if any. A nil p yields the empty handle.
func Own[I, T any](p *T) (Ptr[I], error) {
	h, err := newPtr[I](p, owning)
	if err == nil && p != nil {
		recordPlacement(kindPtr, opBind, heap)
	}
	return h, err
}

func newPtr[I, T any](p *T, m mode) (Ptr[I], error) {
	if p == nil {
		return Ptr[I]{}, nil
	}
	ti := infoOf[T]()
	if ti.erased {
		return Ptr[I]{}, bindError[I](ti, ErrPolymorphic)
	}
	vt, err := actionsFor[I](ti, m)
	if err != nil {
		return Ptr[I]{}, err
	}
	return Ptr[I]{vt: vt, data: unsafe.Pointer(p)}, nil
}

// Get returns the value as I.
// Precondition: the handle is not empty; an empty handle panics.
func (p *Ptr[I]) Get() I {
	return p.vt.bind(p.data)
}

// Interface returns the value as I, or ErrEmpty.
func (p *Ptr[I]) Interface() (I, error) {
	if p.vt == nil {
		var zero I
		return zero, ErrEmpty
	}
	return p.vt.bind(p.data), nil
}

// Empty reports whether the handle refers to nothing.
func (p *Ptr[I]) Empty() bool { return p.vt == nil }

// Owned reports whether Release destroys the value.
func (p *Ptr[I]) Owned() bool { return p.vt != nil && p.vt.mode == owning }

// Type returns the concrete type of the value, or nil if empty.
func (p *Ptr[I]) Type() reflect.Type {
	if p.vt == nil {
		return nil
	}
	return p.vt.typ
}

// Steal releases dst, moves both words of p into dst and empties p.
// It never calls into the adapter of the transferred value.
func (p *Ptr[I]) Steal(dst *Ptr[I]) {
	if p == dst {
		return
	}
	dst.Release()
	p.steal(dst)
}

// steal transfers both words without releasing dst.
func (p *Ptr[I]) steal(dst *Ptr[I]) {
	*dst = *p
	*p = Ptr[I]{}
}

// Release empties the handle, destroying the value if the handle owns it.
func (p *Ptr[I]) Release() {
	if p.vt == nil {
		return
	}
	if p.vt.mode == owning {
		p.vt.cleanup(heap, p.data, false)
		recordRelease(kindPtr, heap)
	}
	*p = Ptr[I]{}
}

func (p *Ptr[I]) erased() (*typeInfo, unsafe.Pointer) {
	if p.vt == nil {
		return nil, nil
	}
	return p.vt.typeInfo, p.data
}
