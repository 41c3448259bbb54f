/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistoryUnderCapacity(t *testing.T) {
	h := NewHistory(4)
	h.Append(Entry{Op: OpAllocate, Offset: 0, Size: 64})
	h.Append(Entry{Op: OpAllocate, Offset: 64, Size: 128})

	assert.Equal(t, 2, h.Len())
	got := h.Snapshot()
	assert.Equal(t, uint32(0), got[0].Offset)
	assert.Equal(t, uint32(64), got[1].Offset)
	assert.Equal(t, uint64(1), got[0].Seq)
	assert.Equal(t, uint64(2), got[1].Seq)
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Append(Entry{Op: OpAllocate, Offset: uint32(i)})
	}

	assert.Equal(t, 3, h.Len())
	got := h.Snapshot()
	// oldest two (offset 0, 1) were evicted
	assert.Equal(t, uint32(2), got[0].Offset)
	assert.Equal(t, uint32(3), got[1].Offset)
	assert.Equal(t, uint32(4), got[2].Offset)
}

func TestHistoryDoVisitsChronologically(t *testing.T) {
	h := NewHistory(2)
	h.Append(Entry{Op: OpAllocate, Offset: 1})
	h.Append(Entry{Op: OpFree, Offset: 2})
	h.Append(Entry{Op: OpReset})

	var seen []Op
	h.Do(func(e Entry) { seen = append(seen, e.Op) })
	assert.Equal(t, []Op{OpFree, OpReset}, seen)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "allocate", OpAllocate.String())
	assert.Equal(t, "free", OpFree.String())
	assert.Equal(t, "reset", OpReset.String())
	assert.Equal(t, "unknown", Op(99).String())
}
