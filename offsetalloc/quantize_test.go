package offsetalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantizeIdentityRange(t *testing.T) {
	for s := uint32(0); s <= 16; s++ {
		assert.Equal(t, s, roundUpBin(s), "roundUpBin(%d)", s)
		assert.Equal(t, s, roundDownBin(s), "roundDownBin(%d)", s)
		assert.Equal(t, s, binToSize(s), "binToSize(%d)", s)
	}
}

func TestQuantizeReferenceTable(t *testing.T) {
	tests := []struct {
		size uint32
		up   uint32
		down uint32
	}{
		{17, 17, 16},
		{118, 39, 38},
		{1024, 64, 64},
		{65536, 112, 112},
		{529445, 137, 136},
		{1048575, 144, 143},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.up, roundUpBin(tt.size), "roundUpBin(%d)", tt.size)
		assert.Equal(t, tt.down, roundDownBin(tt.size), "roundDownBin(%d)", tt.size)
	}
}

func TestQuantizeRoundTrip(t *testing.T) {
	for bin := uint32(0); bin < 240; bin++ {
		size := binToSize(bin)
		assert.Equal(t, bin, roundUpBin(size), "roundUpBin(binToSize(%d))", bin)
		assert.Equal(t, bin, roundDownBin(size), "roundDownBin(binToSize(%d))", bin)
	}
}

func TestQuantizeRoundUpGEQRoundDown(t *testing.T) {
	for _, s := range []uint32{0, 1, 7, 8, 9, 1023, 1024, 1025, 1 << 20, 1<<20 + 7, 1 << 30} {
		up := binToSize(roundUpBin(s))
		down := binToSize(roundDownBin(s))
		assert.GreaterOrEqual(t, up, s, "size=%d", s)
		assert.LessOrEqual(t, down, s, "size=%d", s)
	}
}

func TestFindLowestSetBitAfter(t *testing.T) {
	assert.Equal(t, uint32(3), findLowestSetBitAfter(0b1000, 0))
	assert.Equal(t, uint32(3), findLowestSetBitAfter(0b1000, 3))
	assert.Equal(t, NoSpace, findLowestSetBitAfter(0b1000, 4))
	assert.Equal(t, NoSpace, findLowestSetBitAfter(0, 0))
	assert.Equal(t, uint32(0), findLowestSetBitAfter(0b1, 0))
}
