// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"fmt"
	"strings"

	"code.hybscloud.com/some"
)

// Shape is the interface every scenario dispatches through.
type Shape interface {
	Info() int
	Bump()
}

type Square struct{ side int }

func (s *Square) Info() int { return s.side }
func (s *Square) Bump()     { s.side++ }

type Circle struct{ radius int }

func (c *Circle) Info() int { return c.radius }
func (c *Circle) Bump()     { c.radius-- }

// Variant names a way of storing a collection of shapes.
type Variant string

const (
	Classic Variant = "classic" // []Shape over individually allocated values
	Box     Variant = "box"     // Box without inline storage
	BoxSBO  Variant = "box-sbo" // Box with the default inline buffer
	Fat     Variant = "fat"     // Fat without inline storage
	FatSBO  Variant = "fat-sbo" // Fat with a 16-byte inline buffer
)

var variants = []Variant{Classic, Box, BoxSBO, Fat, FatSBO}

// Variants returns every known variant in reporting order.
func Variants() []Variant { return append([]Variant(nil), variants...) }

// ParseVariant returns the variant named s.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range variants {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown variant %q", s)
}

// collection is a prepared set of n shapes.
type collection interface {
	// sweep calls Info then Bump on every shape and returns the sum of Info.
	sweep() int
	// inline counts shapes stored inside their container.
	inline() int
	// release destroys every shape.
	release()
}

type classic []Shape

func newClassic(n int) classic {
	c := make(classic, n)
	for i := range c {
		if i%2 == 0 {
			c[i] = &Square{side: i}
		} else {
			c[i] = &Circle{radius: i}
		}
	}
	return c
}

func (c classic) sweep() int {
	sum := 0
	for _, s := range c {
		sum += s.Info()
		s.Bump()
	}
	return sum
}

func (c classic) inline() int { return 0 }
func (c classic) release()    { clear(c) }

type boxes[C some.Config] []some.Box[Shape, C]

func newBoxes[C some.Config](n int) (boxes[C], error) {
	c := make(boxes[C], n)
	for i := range c {
		var err error
		if i%2 == 0 {
			err = some.Bind(&c[i], Square{side: i})
		} else {
			err = some.Bind(&c[i], Circle{radius: i})
		}
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c boxes[C]) sweep() int {
	sum := 0
	for i := range c {
		s := c[i].Get()
		sum += s.Info()
		s.Bump()
	}
	return sum
}

func (c boxes[C]) inline() int {
	n := 0
	for i := range c {
		if c[i].Inline() {
			n++
		}
	}
	return n
}

func (c boxes[C]) release() {
	for i := range c {
		c[i].Reset()
	}
}

type fats[C some.Config] []some.Fat[Shape, C]

func newFats[C some.Config](n int) (fats[C], error) {
	c := make(fats[C], n)
	for i := range c {
		var err error
		if i%2 == 0 {
			err = some.Bind(&c[i], Square{side: i})
		} else {
			err = some.Bind(&c[i], Circle{radius: i})
		}
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c fats[C]) sweep() int {
	sum := 0
	for i := range c {
		s := c[i].Get()
		sum += s.Info()
		s.Bump()
	}
	return sum
}

func (c fats[C]) inline() int {
	n := 0
	for i := range c {
		if c[i].Inline() {
			n++
		}
	}
	return n
}

func (c fats[C]) release() {
	for i := range c {
		c[i].Reset()
	}
}

// prepare builds the collection of n shapes stored the way v names.
func prepare(v Variant, n int) (collection, error) {
	switch v {
	case Classic:
		return newClassic(n), nil
	case Box:
		return newBoxes[some.Heap](n)
	case BoxSBO:
		return newBoxes[some.Default](n)
	case Fat:
		return newFats[some.Heap](n)
	case FatSBO:
		return newFats[some.Compact](n)
	}
	return nil, fmt.Errorf("unknown variant %q", v)
}
