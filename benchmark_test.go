// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some_test

import (
	"testing"

	"code.hybscloud.com/some"
)

const benchN = 1024

func fillBoxes[C some.Config](n int) []some.Box[Shape, C] {
	boxes := make([]some.Box[Shape, C], n)
	for i := range boxes {
		if i%2 == 0 {
			some.Bind(&boxes[i], Square{Side: i})
		} else {
			some.Bind(&boxes[i], Circle{Radius: i})
		}
	}
	return boxes
}

func fillFats[C some.Config](n int) []some.Fat[Shape, C] {
	fats := make([]some.Fat[Shape, C], n)
	for i := range fats {
		if i%2 == 0 {
			some.Bind(&fats[i], Square{Side: i})
		} else {
			some.Bind(&fats[i], Circle{Radius: i})
		}
	}
	return fats
}

// BenchmarkIterateInterface is the baseline: a slice of interface values
// over individually allocated shapes.
func BenchmarkIterateInterface(b *testing.B) {
	shapes := make([]Shape, benchN)
	for i := range shapes {
		if i%2 == 0 {
			shapes[i] = &Square{Side: i}
		} else {
			shapes[i] = &Circle{Radius: i}
		}
	}
	for b.Loop() {
		sum := 0
		for _, s := range shapes {
			s.Bump()
			sum += s.Info()
		}
		_ = sum
	}
}

func benchIterateBoxes[C some.Config](b *testing.B) {
	boxes := fillBoxes[C](benchN)
	for b.Loop() {
		sum := 0
		for i := range boxes {
			s := boxes[i].Get()
			s.Bump()
			sum += s.Info()
		}
		_ = sum
	}
}

func benchIterateFats[C some.Config](b *testing.B) {
	fats := fillFats[C](benchN)
	for b.Loop() {
		sum := 0
		for i := range fats {
			s := fats[i].Get()
			s.Bump()
			sum += s.Info()
		}
		_ = sum
	}
}

// BenchmarkIterateBox measures hot-path access through Box.
func BenchmarkIterateBox(b *testing.B) {
	b.Run("default", benchIterateBoxes[some.Default])
	b.Run("heap", benchIterateBoxes[some.Heap])
}

// BenchmarkIterateFat measures hot-path access through Fat.
func BenchmarkIterateFat(b *testing.B) {
	b.Run("compact", benchIterateFats[some.Compact])
	b.Run("heap", benchIterateFats[some.Heap])
}

// BenchmarkMoveBox measures a move out and back between two boxes.
func BenchmarkMoveBox(b *testing.B) {
	b.Run("inline", func(b *testing.B) {
		x := some.MustNew[Shape, some.Default](Square{})
		var y some.Box[Shape, some.Default]
		for b.Loop() {
			y.MoveFrom(&x)
			x.MoveFrom(&y)
		}
	})
	b.Run("heap", func(b *testing.B) {
		x := some.MustNew[Shape, some.Heap](Square{})
		var y some.Box[Shape, some.Heap]
		for b.Loop() {
			y.MoveFrom(&x)
			x.MoveFrom(&y)
		}
	})
}

// BenchmarkMoveFat measures a move out and back between two fats.
func BenchmarkMoveFat(b *testing.B) {
	b.Run("inline", func(b *testing.B) {
		x := some.MustNewFat[Shape, some.Default](Square{})
		var y some.Fat[Shape, some.Default]
		for b.Loop() {
			y.MoveFrom(&x)
			x.MoveFrom(&y)
		}
	})
	b.Run("heap", func(b *testing.B) {
		x := some.MustNewFat[Shape, some.Heap](Square{})
		var y some.Fat[Shape, some.Heap]
		for b.Loop() {
			y.MoveFrom(&x)
			x.MoveFrom(&y)
		}
	})
}

// BenchmarkBind measures bind and reset of one value.
func BenchmarkBind(b *testing.B) {
	b.Run("inline", func(b *testing.B) {
		var x some.Box[Shape, some.Default]
		for b.Loop() {
			some.Bind(&x, Square{Side: 1})
			x.Reset()
		}
	})
	b.Run("recycled", func(b *testing.B) {
		var x some.Box[Shape, Recycled]
		for b.Loop() {
			some.Bind(&x, Big{N: 1})
			x.Reset()
		}
	})
}
