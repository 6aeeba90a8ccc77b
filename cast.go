// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some

import (
	"reflect"
	"unsafe"
)

// Downcasts match the exact concrete type of the held value. A held *T does
// not match T, and no interface or embedding relationship is considered.

// TryGet returns a pointer to the value held by h if its concrete type is
// exactly T, or nil. It never panics.
//
// The pointer is valid until h is reset, reassigned or moved.
func TryGet[T any](h Erased) *T {
	ti, p := h.erased()
	if ti == nil || ti.typ != reflect.TypeFor[T]() {
		return nil
	}
	return (*T)(p)
}

// CastPtr is like TryGet but reports why it failed: ErrEmpty, or a
// *MismatchError matching ErrTypeMismatch.
func CastPtr[T any](h Erased) (*T, error) {
	ti, p := h.erased()
	if ti == nil {
		return nil, ErrEmpty
	}
	if want := reflect.TypeFor[T](); ti.typ != want {
		return nil, &MismatchError{Want: want, Got: ti.typ}
	}
	return (*T)(p), nil
}

// Cast returns an independent copy of the value held by h.
func Cast[T any](h Erased) (T, error) {
	var v T
	p, err := CastPtr[T](h)
	if err != nil {
		return v, err
	}
	ti := infoOf[T]()
	if !ti.copyable {
		return v, &BindError{Type: ti.typ, Err: ErrNotCopyable}
	}
	ti.clone(unsafe.Pointer(&v), unsafe.Pointer(p))
	return v, nil
}

// MustCast is like Cast but panics with the error.
func MustCast[T any](h Erased) T {
	v, err := Cast[T](h)
	if err != nil {
		panic(err)
	}
	return v
}

// Take moves the value held by h out and leaves h empty. The value is not
// dropped: ownership passes to the caller.
func Take[T any](h Extractor) (T, error) {
	var v T
	p, err := CastPtr[T](h)
	if err != nil {
		return v, err
	}
	ti := infoOf[T]()
	if !ti.movable {
		return v, &BindError{Type: ti.typ, Err: ErrNotMovable}
	}
	v = *p
	h.vacate()
	return v, nil
}

// As returns the value held by h seen as another interface J, if the
// value's pointer implements it.
func As[J any](h Erased) (J, bool) {
	ti, p := h.erased()
	if ti == nil {
		var zero J
		return zero, false
	}
	j, ok := ti.ref(p).(J)
	return j, ok
}
