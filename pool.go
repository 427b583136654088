package fastcdc

import (
	"io"
	"sync"
)

// ChunkerPool recycles ChunkIterator sessions for a fixed Chunker
// configuration, avoiding a buffer allocation per session in high-throughput
// code that chunks many sources back to back.
type ChunkerPool struct {
	chunker *Chunker
	pool    sync.Pool
}

// NewChunkerPool builds a ChunkerPool bound to chunker.
func NewChunkerPool(chunker *Chunker) *ChunkerPool {
	return &ChunkerPool{chunker: chunker}
}

// Get returns a ChunkIterator reading from r, reusing a pooled buffer when
// one is available.
func (p *ChunkerPool) Get(r io.Reader) *ChunkIterator {
	if v := p.pool.Get(); v != nil {
		it := v.(*ChunkIterator)
		it.reader = r
		it.buf = it.buf[:0]
		it.processed = 0
		it.eof = false

		return it
	}

	return p.chunker.Chunks(r)
}

// Put returns it to the pool for reuse. it must not be used again by the
// caller afterward.
func (p *ChunkerPool) Put(it *ChunkIterator) {
	it.reader = nil
	p.pool.Put(it)
}

// AsyncChunkerPool is the AsyncChunker analogue of ChunkerPool.
type AsyncChunkerPool struct {
	chunker *Chunker
	pool    sync.Pool
}

// NewAsyncChunkerPool builds an AsyncChunkerPool bound to chunker.
func NewAsyncChunkerPool(chunker *Chunker) *AsyncChunkerPool {
	return &AsyncChunkerPool{chunker: chunker}
}

// Get returns an AsyncChunker reading from src, reusing a pooled buffer
// when one is available.
func (p *AsyncChunkerPool) Get(src AsyncSource) *AsyncChunker {
	if v := p.pool.Get(); v != nil {
		a := v.(*AsyncChunker)
		a.source = src
		a.buf = a.buf[:0]
		a.processed = 0
		a.eof = false
		a.scanned = 0
		a.fpHashCarry = 0

		return a
	}

	return p.chunker.AsStream(src)
}

// Put returns a to the pool for reuse. a must not be used again by the
// caller afterward.
func (p *AsyncChunkerPool) Put(a *AsyncChunker) {
	a.source = nil
	p.pool.Put(a)
}
