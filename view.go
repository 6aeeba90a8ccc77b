// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some

import (
	"reflect"
	"unsafe"
)

// View is a non-owning reference to a value seen as I. Views are freely
// copyable and never destroy what they refer to.
type View[I any] struct {
	p Ptr[I]
}

// ViewOf returns a view of *p. A nil p yields the empty view.
func ViewOf[I, T any](p *T) (View[I], error) {
	h, err := newPtr[I](p, borrowed)
	return View[I]{p: h}, err
}

// Borrow returns a view of the value currently held by src.
// The view is valid until src is reset, reassigned or moved.
func Borrow[I any](src Source[I]) View[I] {
	ti, p := src.erased()
	if ti == nil {
		return View[I]{}
	}
	vt, err := actionsFor[I](ti, borrowed)
	if err != nil {
		// src holds an adapter of the same type to I.
		panic(err)
	}
	return View[I]{p: Ptr[I]{vt: vt, data: p}}
}

// Get returns the referenced value as I.
// Precondition: the view is not empty.
func (v View[I]) Get() I { return v.p.vt.bind(v.p.data) }

// Empty reports whether the view refers to nothing.
func (v View[I]) Empty() bool { return v.p.vt == nil }

// Type returns the concrete type of the referenced value, or nil if empty.
func (v View[I]) Type() reflect.Type { return v.p.Type() }

func (v View[I]) erased() (*typeInfo, unsafe.Pointer) { return v.p.erased() }
