// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some_test

import (
	"code.hybscloud.com/some"
)

// Shape is the trait most tests bind to.
type Shape interface {
	Info() int
	Bump()
}

// Square is 8 bytes and pointer-free: inline under every non-empty buffer.
type Square struct{ Side int }

func (s *Square) Info() int { return s.Side }
func (s *Square) Bump()     { s.Side++ }

type Circle struct{ Radius int }

func (c *Circle) Info() int { return c.Radius }
func (c *Circle) Bump()     { c.Radius-- }

// Mid is 24 bytes: inline under Default, heap under Compact.
type Mid struct{ A, B, C int }

func (m *Mid) Info() int { return m.A + m.B + m.C }
func (m *Mid) Bump()     { m.A++ }

// Big exceeds every predefined buffer.
type Big struct {
	Vals [16]int
	N    int
}

func (b *Big) Info() int { return b.N }
func (b *Big) Bump()     { b.N++; b.Vals[15] = b.N }

// Named holds a pointer (the string header) and is never stored inline.
type Named struct {
	Name string
	N    int
}

func (n *Named) Info() int { return n.N }
func (n *Named) Bump()     { n.N++ }

// Bag deep-copies its slice.
type Bag struct{ Items []int }

func (b Bag) Clone() Bag { return Bag{Items: append([]int(nil), b.Items...)} }
func (b *Bag) Info() int { return len(b.Items) }
func (b *Bag) Bump()     { b.Items = append(b.Items, len(b.Items)) }

// Unclonable can be moved but not copied.
type Unclonable struct {
	some.NoCopy
	N int
}

func (u *Unclonable) Info() int { return u.N }
func (u *Unclonable) Bump()     { u.N++ }

// Pinned can be copied but must not move once bound.
type Pinned struct {
	some.NoMove
	N int
}

func (p *Pinned) Info() int { return p.N }
func (p *Pinned) Bump()     { p.N++ }

// Lifecycle counters of Tracked and WideTracked values.
var (
	created   int
	destroyed int
)

func resetCounters() { created, destroyed = 0, 0 }

// Tracked is inline-eligible under every non-empty buffer.
type Tracked struct{ V int }

func newTracked(v int) Tracked {
	created++
	return Tracked{V: v}
}

func (t Tracked) Clone() Tracked {
	created++
	return Tracked{V: t.V}
}

func (t *Tracked) Drop()     { destroyed++ }
func (t *Tracked) Info() int { return t.V }
func (t *Tracked) Bump()     { t.V++ }

// WideTracked is heap-resident under every predefined buffer.
type WideTracked struct {
	V   int
	Pad [8]int
}

func newWideTracked(v int) WideTracked {
	created++
	return WideTracked{V: v}
}

func (t WideTracked) Clone() WideTracked {
	created++
	return WideTracked{V: t.V, Pad: t.Pad}
}

func (t *WideTracked) Drop()     { destroyed++ }
func (t *WideTracked) Info() int { return t.V }
func (t *WideTracked) Bump()     { t.V++ }

// Optional keeps nothing inline, admits pinned values and may be empty.
type Optional struct{}

func (Optional) Options() some.Options {
	return some.Options{Copy: true, EmptyState: true}
}

// Recycled pools heap cells.
type Recycled struct{}

func (Recycled) Options() some.Options {
	return some.Options{Copy: true, Move: true, EmptyState: true, Recycle: true}
}

// Aligned4 has a 16-byte buffer aligned to 4 bytes.
type Aligned4 struct{ some.Buffer16 }

func (Aligned4) Options() some.Options {
	return some.Options{Align: 4, Copy: true, Move: true, EmptyState: true}
}

// Leaky is not a valid configuration: it holds a pointer.
type Leaky struct{ P *int }

func (Leaky) Options() some.Options { return some.Options{EmptyState: true} }

// Misaligned asks for an alignment larger than its buffer's.
type Misaligned struct{ some.Buffer16 }

func (Misaligned) Options() some.Options {
	return some.Options{Align: 16, EmptyState: true}
}

// slot is the surface shared by every owning container of Shape.
type slot interface {
	some.Sink
	some.Source[Shape]
	some.Extractor
	Get() Shape
	Interface() (Shape, error)
	CopyFrom(some.Source[Shape]) error
	MoveFrom(some.Source[Shape]) error
	Reset()
	Empty() bool
	Inline() bool
}

var (
	_ slot = (*some.Box[Shape, some.Default])(nil)
	_ slot = (*some.Fat[Shape, some.Default])(nil)
	_ slot = (*some.Box[Shape, some.Heap])(nil)
	_ slot = (*some.Fat[Shape, some.Heap])(nil)
)
