//go:build chunkcopy_debug

package chunkcopy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContractViolationsPanic(t *testing.T) {
	buf := make([]byte, 64)

	assert.True(t, debugAssertions)
	assert.PanicsWithValue(t,
		"chunkcopy: contract violation: copyBytes length 8 not in [0,8)",
		func() { CopyBytes(buf, 0, buf, 16, 8) })
	assert.Panics(t, func() { chunkMemcpy(buf, 0, buf, 16, 7) })
	assert.Panics(t, func() { byteMemset(buf, 1, 4) })
	assert.Panics(t, func() { Default().ChunkCopy(buf, 10, 0, 4, 12) })
	assert.Panics(t, func() { SetBytes(buf, 8, 0, 3) })
}
