// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package some

import "unsafe"

// Heap cells of released values are pooled per concrete type when the
// configuration sets Recycle. Pooled cells are zeroed before reuse.
// A pointer obtained through TryGet or CastPtr is valid only while the
// container still holds the value; with recycling, a stale pointer observes
// whatever value reuses the cell.

// acquireCell returns a zeroed heap cell for ti's type.
func (ti *typeInfo) acquireCell(recycle bool) unsafe.Pointer {
	if recycle {
		if v := ti.cells.Get(); v != nil {
			return ti.unref(v)
		}
	}
	return ti.alloc()
}

// releaseCell zeroes p and returns it to the pool; no-op if not recycling.
func (ti *typeInfo) releaseCell(p unsafe.Pointer, recycle bool) {
	if !recycle {
		return
	}
	ti.zero(p)
	ti.cells.Put(ti.ref(p))
}
