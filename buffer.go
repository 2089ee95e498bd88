// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package chunkcopy

// Buffer is a destination block with writable slack past its logical end.
// The kernel may be handed Padded() as its destination; Bytes() is what the
// caller owns as output. Bytes in the slack region carry no meaning.
type Buffer struct {
	data  []byte
	size  int
	slack int
}

// NewBuffer allocates a block of size logical bytes plus width-1 bytes of slack.
// WidthAuto uses DetectedWidth.
func NewBuffer(size int, width Width) *Buffer {
	b := &Buffer{}
	b.reset(size, slackFor(width))

	return b
}

// slackFor returns the padding a width requires.
func slackFor(width Width) int {
	if width == WidthAuto {
		width = detectedWidth
	}

	return int(width) - 1
}

// reset resizes b to size logical bytes, reusing the allocation when it is large enough.
// Contents are not cleared.
func (b *Buffer) reset(size, slack int) {
	need := size + slack
	if cap(b.data) < need {
		b.data = make([]byte, need)
	}

	b.data = b.data[:need]
	b.size = size
	b.slack = slack
}

// Len returns the logical length.
func (b *Buffer) Len() int {
	return b.size
}

// Slack returns the number of writable bytes reserved past Len.
func (b *Buffer) Slack() int {
	return b.slack
}

// Bytes returns the logical window.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.size]
}

// Padded returns the logical window followed by the slack region.
func (b *Buffer) Padded() []byte {
	return b.data
}
