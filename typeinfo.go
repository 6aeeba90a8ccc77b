// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some

import (
	"reflect"
	"sync"
	"unsafe"
)

// Cloner is implemented by types that need a deep copy.
// Containers copy a Cloner with Clone; other types are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

// Dropper is implemented by types that release resources when destroyed.
// Containers call Drop exactly once per owned value.
type Dropper interface {
	Drop()
}

// NoCopy marks a type as not copyable. Embed it as the first field:
//
//	type Conn struct {
//		some.NoCopy
//		fd int
//	}
//
// Containers whose configuration requires Copy reject such values.
type NoCopy struct{}

func (NoCopy) noCopy() {}

// NoMove marks a type whose address must stay stable once bound.
// Such values are never stored inline, and containers whose configuration
// requires Move reject them.
type NoMove struct{}

func (NoMove) noMove() {}

// typeInfo is the per-type half of an adapter: layout, capabilities and the
// typed closures the action protocol is built from.
type typeInfo struct {
	typ      reflect.Type
	size     uintptr
	align    uintptr
	flat     bool
	copyable bool
	movable  bool
	erased   bool

	ref    func(p unsafe.Pointer) any
	unref  func(v any) unsafe.Pointer
	alloc  func() unsafe.Pointer
	assign func(dst, src unsafe.Pointer)
	clone  func(dst, src unsafe.Pointer)
	move   func(dst, src unsafe.Pointer)
	drop   func(p unsafe.Pointer)
	zero   func(p unsafe.Pointer)

	cells sync.Pool
}

var (
	infos      sync.Map // reflect.Type -> *typeInfo
	erasedType = reflect.TypeFor[Erased]()
)

func infoOf[T any]() *typeInfo {
	t := reflect.TypeFor[T]()
	if v, ok := infos.Load(t); ok {
		return v.(*typeInfo)
	}
	v, _ := infos.LoadOrStore(t, newInfo[T](t))
	return v.(*typeInfo)
}

func newInfo[T any](t reflect.Type) *typeInfo {
	var z T
	ti := &typeInfo{
		typ:    t,
		size:   unsafe.Sizeof(z),
		align:  unsafe.Alignof(z),
		flat:   pointerFree(t),
		erased: t.Implements(erasedType) || reflect.PointerTo(t).Implements(erasedType),
		ref:    func(p unsafe.Pointer) any { return (*T)(p) },
		unref:  func(v any) unsafe.Pointer { return unsafe.Pointer(v.(*T)) },
		alloc:  func() unsafe.Pointer { return unsafe.Pointer(new(T)) },
		assign: func(dst, src unsafe.Pointer) { *(*T)(dst) = *(*T)(src) },
		move: func(dst, src unsafe.Pointer) {
			var zero T
			*(*T)(dst) = *(*T)(src)
			*(*T)(src) = zero
		},
		zero: func(p unsafe.Pointer) {
			var zero T
			*(*T)(p) = zero
		},
		drop: func(unsafe.Pointer) {},
	}
	_, pinned := any((*T)(nil)).(interface{ noMove() })
	_, unique := any((*T)(nil)).(interface{ noCopy() })
	ti.movable = !pinned
	ti.copyable = !unique

	ti.clone = ti.assign
	if _, ok := any((*T)(nil)).(Cloner[T]); ok {
		ti.clone = func(dst, src unsafe.Pointer) {
			*(*T)(dst) = any((*T)(src)).(Cloner[T]).Clone()
		}
	}
	if _, ok := any((*T)(nil)).(Dropper); ok {
		ti.drop = func(p unsafe.Pointer) { any((*T)(p)).(Dropper).Drop() }
	}
	return ti
}

// pointerFree reports whether values of t hold no Go pointers, so they may
// live in a buffer the garbage collector does not scan.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
