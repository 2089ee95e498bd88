package chunkcopy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkMemcpy_MatchesReference(t *testing.T) {
	src := patterned(600, 5)

	for n := chunk8; n <= 300; n++ {
		got := guarded(4, n, chunk16, 0)
		want := guarded(4, n, chunk16, 0)
		refCopy(want, 4, src, 11, n)

		end := chunkMemcpy(got, 4, src, 11, n)
		require.Equalf(t, 4+n, end, "len %d", n)
		require.Equalf(t, want, got, "len %d", n)
	}
}

func TestChunkMemcpy16_MatchesReference(t *testing.T) {
	src := patterned(600, 6)

	for n := chunk16; n <= 300; n++ {
		got := guarded(4, n, chunk16, 0)
		want := guarded(4, n, chunk16, 0)
		refCopy(want, 4, src, 11, n)

		end := ChunkMemcpy16(got, 4, src, 11, n)
		require.Equalf(t, 4+n, end, "len %d", n)
		require.Equalf(t, want, got, "len %d", n)
	}
}

func TestChunkMemcpy_TrailingSourceOneChunkBehind(t *testing.T) {
	// With the source exactly one chunk behind, ascending chunk copies behave
	// like a left-to-right byte loop and produce a period-8 repetition.
	for _, k := range allKernels() {
		w := int(k.Width())
		t.Run(k.String(), func(t *testing.T) {
			buf := guarded(w, 100, 0, 8)
			want := append([]byte(nil), buf...)
			refCopy(want, w, want, 0, 100)

			end := k.ChunkMemcpy(buf, w, buf, 0, 100)
			require.Equal(t, w+100, end)
			assert.Equal(t, want, buf)
		})
	}
}

func TestKernelChunkMemcpy_PicksUnitByLength(t *testing.T) {
	k := &Kernel{width: Width16}
	src := patterned(64, 1)

	for _, n := range []int{8, 15, 16, 17, 63} {
		dst := guarded(0, n, chunk16, 0)
		end := k.ChunkMemcpy(dst, 0, src, 0, n)
		require.Equal(t, n, end)
		assert.Equal(t, src[:n], dst[:n])
		for i := n; i < len(dst); i++ {
			require.Equalf(t, byte(sentinel), dst[i], "len %d wrote past end at %d", n, i)
		}
	}
}
