// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some

import (
	"reflect"
	"sync"
)

var forwarders sync.Map // reflect.Type -> func(any) (I, bool)

// Adapt registers the forwarding glue of interface I for concrete types whose
// pointer does not implement I, such as int or types from other packages.
//
// forward receives a pointer to the stored value (*T as any) and returns the
// view of it as I. It is first called with a nil *T to decide whether T is
// supported, so it must only inspect the dynamic type until it is asked for a
// view of a real value. Types implementing I themselves never reach forward.
//
//	some.Adapt(func(self any) (Addable, bool) {
//		switch p := self.(type) {
//		case *int:
//			return intAdder{p}, true
//		}
//		return nil, false
//	})
//
// Adapt is typically called from an init function. A later call for the same
// interface replaces the glue for types not yet bound.
func Adapt[I any](forward func(self any) (I, bool)) {
	forwarders.Store(reflect.TypeFor[I](), forward)
}

func forwarderOf[I any]() func(any) (I, bool) {
	v, ok := forwarders.Load(reflect.TypeFor[I]())
	if !ok {
		return nil
	}
	return v.(func(any) (I, bool))
}
