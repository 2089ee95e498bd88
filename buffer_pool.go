// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/chunkcopy

package chunkcopy

import "sync"

// BufferPool recycles destination blocks padded for one chunk width.
// It is safe for concurrent use.
type BufferPool struct {
	pool  sync.Pool
	slack int
}

// NewBufferPool returns a pool whose buffers carry the slack width needs.
func NewBufferPool(width Width) *BufferPool {
	return &BufferPool{slack: slackFor(width)}
}

// Get returns a buffer with Len() == size. Its contents are unspecified.
func (p *BufferPool) Get(size int) *Buffer {
	b, ok := p.pool.Get().(*Buffer)
	if !ok {
		b = &Buffer{}
	}

	b.reset(size, p.slack)

	return b
}

// Put returns b to the pool. b must not be used afterwards.
func (p *BufferPool) Put(b *Buffer) {
	if b == nil {
		return
	}

	p.pool.Put(b)
}
