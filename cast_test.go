// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"

	"code.hybscloud.com/some"
)

func TestCastScalar(t *testing.T) {
	b := some.MustNew[any, some.Default](1)
	v, err := some.Cast[int](&b)
	if err != nil || v != 1 {
		t.Fatalf("Cast[int]: got %d, %v", v, err)
	}

	_, err = some.Cast[string](&b)
	if !errors.Is(err, some.ErrTypeMismatch) {
		t.Fatalf("Cast[string]: got %v, want ErrTypeMismatch", err)
	}
	var me *some.MismatchError
	if !errors.As(err, &me) {
		t.Fatalf("Cast[string]: want *MismatchError, got %T", err)
	}
	if me.Want != reflect.TypeFor[string]() || me.Got != reflect.TypeFor[int]() {
		t.Fatalf("MismatchError: want=%v got=%v", me.Want, me.Got)
	}

	if err := some.Bind(&b, "hello"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if b.Inline() {
		t.Fatal("a string holds a pointer and must not be inline")
	}
	if s := some.MustCast[string](&b); s != "hello" {
		t.Fatalf("MustCast[string]: got %q", s)
	}
	if _, err := some.Cast[int](&b); !errors.Is(err, some.ErrTypeMismatch) {
		t.Fatalf("Cast[int]: got %v, want ErrTypeMismatch", err)
	}
}

func TestMustCastPanics(t *testing.T) {
	b := some.MustNew[any, some.Default](1)
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, some.ErrTypeMismatch) {
			t.Fatalf("recover: got %v, want ErrTypeMismatch", err)
		}
	}()
	some.MustCast[string](&b)
}

func TestCastPtr(t *testing.T) {
	var e some.Box[any, some.Default]
	if _, err := some.CastPtr[int](&e); !errors.Is(err, some.ErrEmpty) {
		t.Fatalf("CastPtr on empty: got %v, want ErrEmpty", err)
	}
	if some.TryGet[int](&e) != nil {
		t.Fatal("TryGet on empty: want nil")
	}

	b := some.MustNew[any, some.Default](1)
	p, err := some.CastPtr[int](&b)
	if err != nil {
		t.Fatalf("CastPtr: %v", err)
	}
	*p = 7
	if v := some.MustCast[int](&b); v != 7 {
		t.Fatalf("write through CastPtr: got %d, want 7", v)
	}
}

func TestCastClones(t *testing.T) {
	resetCounters()
	b := some.MustNew[Shape, some.Default](newTracked(3))
	v, err := some.Cast[Tracked](&b)
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if created != 2 {
		t.Fatalf("Cast should clone: created=%d", created)
	}
	v.Drop()
	b.Reset()
	if created != destroyed {
		t.Fatalf("created=%d destroyed=%d", created, destroyed)
	}

	u := some.MustNew[Shape, some.Unique](Unclonable{N: 1})
	if _, err := some.Cast[Unclonable](&u); !errors.Is(err, some.ErrNotCopyable) {
		t.Fatalf("Cast of a unique value: got %v, want ErrNotCopyable", err)
	}
}

func TestTake(t *testing.T) {
	t.Run("inline", func(t *testing.T) {
		resetCounters()
		b := some.MustNew[Shape, some.Default](newTracked(5))
		v, err := some.Take[Tracked](&b)
		if err != nil {
			t.Fatalf("Take: %v", err)
		}
		if !b.Empty() || v.V != 5 {
			t.Fatalf("empty=%v value=%d", b.Empty(), v.V)
		}
		if destroyed != 0 {
			t.Fatal("Take should not drop the value")
		}
	})
	t.Run("heap", func(t *testing.T) {
		f := some.MustNewFat[Shape, some.Default](Named{Name: "n", N: 2})
		v, err := some.Take[Named](&f)
		if err != nil {
			t.Fatalf("Take: %v", err)
		}
		if diff := cmp.Diff(Named{Name: "n", N: 2}, v); diff != "" {
			t.Fatalf("taken value mismatch (-want +got):\n%s", diff)
		}
		if !f.Empty() {
			t.Fatal("container should be empty after Take")
		}
	})
	t.Run("mismatch", func(t *testing.T) {
		b := some.MustNew[Shape, some.Default](Square{Side: 1})
		if _, err := some.Take[Circle](&b); !errors.Is(err, some.ErrTypeMismatch) {
			t.Fatalf("got %v, want ErrTypeMismatch", err)
		}
		if b.Empty() {
			t.Fatal("failed Take emptied the container")
		}
	})
	t.Run("pinned", func(t *testing.T) {
		b := some.MustNew[Shape, Optional](Pinned{N: 1})
		if _, err := some.Take[Pinned](&b); !errors.Is(err, some.ErrNotMovable) {
			t.Fatalf("got %v, want ErrNotMovable", err)
		}
	})
}

type Sizer interface{ Size() int }

func (m *Mid) Size() int { return 24 }

func TestAs(t *testing.T) {
	b := some.MustNew[Shape, some.Default](Mid{A: 1})
	s, ok := some.As[Sizer](&b)
	if !ok || s.Size() != 24 {
		t.Fatalf("As[Sizer]: ok=%v", ok)
	}
	if _, ok := some.As[Sizer](some.Borrow[Shape](&b)); !ok {
		t.Fatal("As[Sizer] through a view: want ok")
	}
	c := some.MustNew[Shape, some.Default](Square{})
	if _, ok := some.As[Sizer](&c); ok {
		t.Fatal("As[Sizer] on a Square: want !ok")
	}
	var e some.Box[Shape, some.Default]
	if _, ok := some.As[Shape](&e); ok {
		t.Fatal("As on an empty container: want !ok")
	}
}
