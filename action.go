// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some

import (
	"reflect"
	"sync"
	"unsafe"
)

// mode is how an adapter refers to its value.
type mode uint8

const (
	owned    mode = iota // value owned by a container
	owning               // external pointer, ownership taken
	borrowed             // external pointer, never destroyed
)

// location is the tag of a storage slot.
type location uint8

const (
	vacant location = iota
	inline
	heap
)

// target describes the storage a value is placed into.
type target struct {
	buf     unsafe.Pointer
	sbo     sbo
	recycle bool
}

// placed reports where a value landed.
type placed struct {
	loc  location
	addr unsafe.Pointer
}

// actions is the adapter of one concrete type to interface I.
// Every lifecycle event of an erased value goes through it.
type actions[I any] struct {
	*typeInfo
	mode mode
	bind func(p unsafe.Pointer) I
}

type actionKey struct {
	iface    reflect.Type
	concrete reflect.Type
	mode     mode
}

var adapters sync.Map // actionKey -> *actions[I]

// actionsFor returns the cached adapter of ti's type to I in mode m.
func actionsFor[I any](ti *typeInfo, m mode) (*actions[I], error) {
	it := reflect.TypeFor[I]()
	key := actionKey{iface: it, concrete: ti.typ, mode: m}
	if v, ok := adapters.Load(key); ok {
		return v.(*actions[I]), nil
	}
	if it.Kind() != reflect.Interface {
		return nil, &BindError{Type: ti.typ, Interface: it, Err: ErrNotInterface}
	}
	a := &actions[I]{typeInfo: ti, mode: m}
	if _, ok := ti.ref(nil).(I); ok {
		a.bind = func(p unsafe.Pointer) I { return ti.ref(p).(I) }
	} else if f := forwarderOf[I](); f != nil {
		if _, ok := f(ti.ref(nil)); !ok {
			return nil, &BindError{Type: ti.typ, Interface: it, Err: ErrNotImplemented}
		}
		a.bind = func(p unsafe.Pointer) I {
			v, _ := f(ti.ref(p))
			return v
		}
	} else {
		return nil, &BindError{Type: ti.typ, Interface: it, Err: ErrNotImplemented}
	}
	v, _ := adapters.LoadOrStore(key, a)
	return v.(*actions[I]), nil
}

// place picks the location of a value about to be constructed in t.
func (a *actions[I]) place(t target) placed {
	if eligible(a.typeInfo, t.sbo) {
		return placed{loc: inline, addr: t.buf}
	}
	return placed{loc: heap, addr: a.acquireCell(t.recycle)}
}

// copyInto constructs an independent copy of the value at src in t.
// The caller checks copyability.
func (a *actions[I]) copyInto(t target, src unsafe.Pointer) placed {
	at := a.place(t)
	a.clone(at.addr, src)
	return at
}

// moveInto relocates the value at src into t and leaves src zeroed.
func (a *actions[I]) moveInto(t target, src unsafe.Pointer) placed {
	at := a.place(t)
	a.move(at.addr, src)
	return at
}

// relocate moves the value at src, held by the source at loc, into t.
// An inline source always relocates. A heap source relocates only when the
// value is eligible for t's buffer, releasing its cell; otherwise the cell
// itself is handed over. moved reports whether the value was relocated.
func (a *actions[I]) relocate(t target, src unsafe.Pointer, loc location, recycle bool) (at placed, moved bool) {
	if loc == heap && !eligible(a.typeInfo, t.sbo) {
		return placed{loc: heap, addr: src}, false
	}
	at = a.moveInto(t, src)
	if loc == heap {
		a.releaseCell(src, recycle)
	}
	return at, true
}

// spillInto relocates the pointee of an embedded-pointer slot into t and
// returns the slot for the destination together with where the value landed.
func (a *actions[I]) spillInto(t target, src unsafe.Pointer) (Ptr[I], location) {
	at := a.moveInto(t, src)
	return Ptr[I]{vt: a, data: at.addr}, at.loc
}

// cleanup destroys the value at p.
func (a *actions[I]) cleanup(loc location, p unsafe.Pointer, recycle bool) {
	switch a.mode {
	case borrowed:
		return
	case owning:
		a.drop(p)
		return
	}
	a.drop(p)
	switch loc {
	case inline:
		a.zero(p)
	case heap:
		a.releaseCell(p, recycle)
	}
}

// Erased is implemented by every handle holding a type-erased value.
type Erased interface {
	erased() (*typeInfo, unsafe.Pointer)
}

// Source is implemented by the owning containers of interface I.
// Containers copy and move from any Source of the same interface,
// whatever its configuration.
//
// A destination calls claim before it destroys its own value, so a source
// that panics on misuse does so while both containers are intact.
type Source[I any] interface {
	Erased
	adapter() *actions[I]
	claim()
	surrender(t target) (Ptr[I], location)
}

// Sink is implemented by containers a value can be bound into.
type Sink interface {
	adopt(ti *typeInfo, v unsafe.Pointer) error
}

// Extractor is implemented by containers a value can be moved out of.
type Extractor interface {
	Erased
	vacate()
}
