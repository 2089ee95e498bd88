package chunkcopy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWidthPrimitives(t *testing.T) {
	primitives := []struct {
		width int
		fn    func([]byte, int, []byte, int) int
	}{
		{1, copy1}, {2, copy2}, {3, copy3}, {4, copy4},
		{5, copy5}, {6, copy6}, {7, copy7}, {8, copy8}, {16, copy16},
	}

	src := patterned(32, 1)
	for _, p := range primitives {
		t.Run(caseName("copy%d", p.width), func(t *testing.T) {
			dst := bytes.Repeat([]byte{sentinel}, 40)

			end := p.fn(dst, 3, src, 5)
			require.Equal(t, 3+p.width, end)
			assert.Equal(t, src[5:5+p.width], dst[3:3+p.width])
			assert.Equal(t, bytes.Repeat([]byte{sentinel}, 3), dst[:3])
			assert.Equal(t, bytes.Repeat([]byte{sentinel}, len(dst)-end), dst[end:])
		})
	}
}

func TestFixedWidthPrimitives_OverlappingLoadBeforeStore(t *testing.T) {
	// An 8-byte copy one byte ahead of its source reads all 8 bytes first.
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	copy8(buf, 1, buf, 0)
	assert.Equal(t, []byte{1, 1, 2, 3, 4, 5, 6, 7, 8}, buf)

	wide := patterned(17, 2)
	want := append([]byte{wide[0]}, wide[:16]...)
	copy16(wide, 1, wide, 0)
	assert.Equal(t, want, wide)
}

func TestSplat(t *testing.T) {
	assert.Equal(t, uint64(0x7a7a7a7a7a7a7a7a), splat8(0x7a))

	v := splat16(0xff)
	assert.Equal(t, bytes.Repeat([]byte{0xff}, 16), v[:])
}
