// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some

import (
	"errors"
	"fmt"
	"reflect"
)

// Binding errors. A container that returns one of them is left unchanged.
var (
	ErrNotCopyable    = errors.New("some: value is not copyable")
	ErrNotMovable     = errors.New("some: value is not movable")
	ErrNotImplemented = errors.New("some: value does not implement the interface")
	ErrNotInterface   = errors.New("some: trait is not an interface type")
	ErrPolymorphic    = errors.New("some: value is already type-erased")
	ErrConfig         = errors.New("some: invalid configuration")
)

// Runtime faults.
var (
	// ErrEmpty reports access to a container that holds no value.
	ErrEmpty = errors.New("some: empty container")

	// ErrTypeMismatch reports a downcast to a type other than the held one.
	ErrTypeMismatch = errors.New("some: type mismatch")
)

// BindError describes a rejected binding of a concrete type.
type BindError struct {
	Type      reflect.Type
	Interface reflect.Type
	Err       error
}

func (e *BindError) Error() string {
	if e.Interface == nil {
		return fmt.Sprintf("bind %v: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("bind %v to %v: %v", e.Type, e.Interface, e.Err)
}

func (e *BindError) Unwrap() error { return e.Err }

// MismatchError is returned by downcasts when the held type is not Want.
type MismatchError struct {
	Want reflect.Type
	Got  reflect.Type
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("some: type mismatch: want %v, holding %v", e.Want, e.Got)
}

func (e *MismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// ConfigError describes a configuration type that cannot serve as a buffer.
type ConfigError struct {
	Config reflect.Type
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("some: invalid configuration %v: %s", e.Config, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// bindError wraps err with the types involved; nil stays nil.
func bindError[I any](ti *typeInfo, err error) error {
	if err == nil {
		return nil
	}
	var be *BindError
	if errors.As(err, &be) {
		return err
	}
	return &BindError{Type: ti.typ, Interface: reflect.TypeFor[I](), Err: err}
}
