package chunkcopy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyBytes_MatchesReference(t *testing.T) {
	src := patterned(16, 3)
	for n := 0; n < chunk8; n++ {
		t.Run(caseName("len-%d", n), func(t *testing.T) {
			got := guarded(2, n, 8, 0)
			want := guarded(2, n, 8, 0)
			refCopy(want, 2, src, 4, n)

			end := CopyBytes(got, 2, src, 4, n)
			require.Equal(t, 2+n, end)
			assert.Equal(t, want, got)
		})
	}
}

func TestSetBytes_CyclicPattern(t *testing.T) {
	for dist := 1; dist <= 7; dist++ {
		for n := dist; n < chunk8; n++ {
			t.Run(caseName("dist-%d/len-%d", dist, n), func(t *testing.T) {
				buf := guarded(dist, n, 8, dist)
				pattern := append([]byte(nil), buf[:dist]...)

				end := SetBytes(buf, dist, dist, n)
				require.Equal(t, dist+n, end)

				for i := 0; i < n; i++ {
					require.Equalf(t, pattern[i%dist], buf[dist+i], "byte %d", i)
				}
				for i := end; i < len(buf); i++ {
					require.Equalf(t, byte(sentinel), buf[i], "write past end at %d", i)
				}
			})
		}
	}
}

func TestSetBytes_LongDistanceIsPlainCopy(t *testing.T) {
	buf := guarded(20, 5, 4, 9)
	want := append([]byte(nil), buf...)
	refCopy(want, 20, want, 8, 5)

	end := SetBytes(buf, 20, 12, 5)
	require.Equal(t, 25, end)
	assert.Equal(t, want, buf)
}

func TestSetBytes_RunFill(t *testing.T) {
	buf := []byte{'x', 0, 0, 0, 0, 0, 0, 0, sentinel}
	end := SetBytes(buf, 1, 1, 7)
	require.Equal(t, 8, end)
	assert.Equal(t, []byte("xxxxxxxx\xee"), buf)
}
