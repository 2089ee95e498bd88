package chunkcopy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteMemset_FillsRun(t *testing.T) {
	for _, k := range allKernels() {
		t.Run(k.String(), func(t *testing.T) {
			for n := chunk8; n <= 200; n++ {
				buf := guarded(3, n, 16, n)
				c := buf[2]

				end := k.ByteMemset(buf, 3, n)
				require.Equalf(t, 3+n, end, "len %d", n)
				require.Equalf(t, bytes.Repeat([]byte{c}, n), buf[3:3+n], "len %d", n)
				require.Equalf(t, bytes.Repeat([]byte{sentinel}, 16), buf[3+n:], "len %d wrote past end", n)
			}
		})
	}
}

func TestByteMemset_Example(t *testing.T) {
	for _, k := range allKernels() {
		t.Run(k.String(), func(t *testing.T) {
			buf := make([]byte, 1+20+k.Slack())
			buf[0] = 0x7A

			end := k.ByteMemset(buf, 1, 20)
			require.Equal(t, 21, end)
			assert.Equal(t, bytes.Repeat([]byte{0x7A}, 20), buf[1:21])
		})
	}
}

func TestChunkMemset_CyclicPattern(t *testing.T) {
	for _, k := range allKernels() {
		t.Run(k.String(), func(t *testing.T) {
			for dist := 1; dist <= 40; dist++ {
				for n := chunk8; n <= 140; n++ {
					buf := guarded(dist, n, 16, dist*n)
					pattern := append([]byte(nil), buf[:dist]...)

					end := k.ChunkMemset(buf, dist, dist, n)
					require.Equalf(t, dist+n, end, "dist %d len %d", dist, n)

					for i := 0; i < n; i++ {
						if buf[dist+i] != pattern[i%dist] {
							t.Fatalf("dist %d len %d: byte %d = %#x, want %#x", dist, n, i, buf[dist+i], pattern[i%dist])
						}
					}
					require.Equalf(t, bytes.Repeat([]byte{sentinel}, 16), buf[dist+n:], "dist %d len %d wrote past end", dist, n)
				}
			}
		})
	}
}

func TestChunkMemset_DoublingBoundaries(t *testing.T) {
	cases := []struct {
		name string
		dist int
		n    int
	}{
		{"dist-len-minus-one", 8, 9},
		{"dist-len-minus-one-long", 99, 100},
		{"dist-2-short", 2, 8},
		{"dist-2-long", 2, 1000},
		{"dist-eq-word", 8, 64},
		{"dist-eq-vector", 16, 64},
		{"dist-eq-vector-exact", 16, 16},
		{"dist-3-tail", 3, 9},
		{"dist-7-tail", 7, 13},
	}

	for _, k := range allKernels() {
		for _, tc := range cases {
			t.Run(k.String()+"/"+tc.name, func(t *testing.T) {
				buf := guarded(tc.dist, tc.n, 16, tc.n)
				want := append([]byte(nil), buf...)
				refCopy(want, tc.dist, want, 0, tc.n)

				end := k.ChunkMemset(buf, tc.dist, tc.dist, tc.n)
				require.Equal(t, tc.dist+tc.n, end)
				assert.Equal(t, want, buf)
			})
		}
	}
}
