package fastcdc

import (
	"errors"
	"io"
)

// Chunk is the engine's sole output record. Data is exactly the bytes in
// [Offset, Offset+Length) of the original stream; it is only valid until
// the next call to the driver that produced it — callers that need to
// retain it must copy.
type Chunk struct {
	Offset uint64
	Length int
	Data   []byte
	FPHash uint64
}

// Chunker holds the immutable, shared-by-reference configuration for a
// chunking algorithm instance. Build one with NewChunker and start as many
// independent sessions from it (via Chunks or AsStream) as needed; a
// Chunker has no mutable state of its own.
type Chunker struct {
	cfg    *Config
	logger *eventLogger
}

// NewChunker validates (minSize, avgSize, maxSize, normal) against the
// bounds in spec section 3 and returns a Chunker, or a *ConfigError if any
// bound or the min<avg<max ordering is violated.
func NewChunker(minSize, avgSize, maxSize int, normal Normal, opts ...ChunkerOption) (*Chunker, error) {
	cfg, err := newConfig(minSize, avgSize, maxSize, normal, 0)
	if err != nil {
		return nil, err
	}

	c := &Chunker{cfg: cfg, logger: noopLogger()}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// MustNewChunker is NewChunker but panics on invalid config, for callers
// that construct a Chunker from constants they know are valid.
func MustNewChunker(minSize, avgSize, maxSize int, normal Normal, opts ...ChunkerOption) *Chunker {
	c, err := NewChunker(minSize, avgSize, maxSize, normal, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// ChunkerOption configures optional, non-size aspects of a Chunker.
type ChunkerOption func(*Chunker)

// ChunkIterator is a blocking, synchronous session over a byte source: one
// instance per call to Chunker.Chunks, owning its own buffer and read
// position.
type ChunkIterator struct {
	chunker *Chunker
	reader  io.Reader

	buf       []byte
	processed uint64
	eof       bool
}

// Chunks starts a new blocking chunking session over r. The returned
// iterator is not safe for concurrent use, but is fully independent of any
// other session started from the same Chunker.
func (c *Chunker) Chunks(r io.Reader) *ChunkIterator {
	return &ChunkIterator{
		chunker: c,
		reader:  r,
		buf:     make([]byte, 0, c.cfg.bufferSize),
	}
}

// fill tops up buf up to max_size bytes (or until EOF/error), preserving
// any unconsumed bytes already in buf.
func (it *ChunkIterator) fill() error {
	for !it.eof && len(it.buf) < it.chunker.cfg.maxSize {
		if cap(it.buf) == len(it.buf) {
			grown := make([]byte, len(it.buf), it.chunker.cfg.maxSize)
			copy(grown, it.buf)
			it.buf = grown
		}

		n, err := it.reader.Read(it.buf[len(it.buf):cap(it.buf)])
		it.buf = it.buf[:len(it.buf)+n]

		if n == 0 {
			if errors.Is(err, io.EOF) {
				it.eof = true

				return nil
			}
			if err != nil {
				it.chunker.logger.readError(it.processed, err)

				return err
			}

			it.eof = true

			return nil
		}

		if err != nil && !errors.Is(err, io.EOF) {
			it.chunker.logger.readError(it.processed, err)

			return err
		}
		if errors.Is(err, io.EOF) {
			it.eof = true
		}
	}

	return nil
}

// Next returns the next chunk from the stream, or io.EOF once the stream
// and internal buffer are both exhausted. A read error is surfaced once
// and does not advance the stream; buffered bytes are preserved so a retry
// (if the source is recoverable) can make progress.
func (it *ChunkIterator) Next() (Chunk, error) {
	if it.eof && len(it.buf) == 0 {
		return Chunk{}, io.EOF
	}

	if err := it.fill(); err != nil {
		return Chunk{}, err
	}

	if len(it.buf) == 0 {
		return Chunk{}, io.EOF
	}

	scanLen := len(it.buf)
	if scanLen > it.chunker.cfg.maxSize {
		scanLen = it.chunker.cfg.maxSize
	}

	fpHash, cut := findCutpoint(it.buf[:scanLen], it.chunker.cfg.minSize, it.chunker.cfg.avgSize, it.chunker.cfg.maxSize, it.chunker.cfg.masks)

	data := it.buf[:cut]
	chunk := Chunk{
		Offset: it.processed,
		Length: cut,
		Data:   data,
		FPHash: fpHash,
	}

	it.chunker.logger.boundary(chunk.Offset, chunk.Length, chunk.FPHash, cut == it.chunker.cfg.maxSize)

	remaining := make([]byte, len(it.buf)-cut, cap(it.buf))
	copy(remaining, it.buf[cut:])
	it.buf = remaining

	it.processed += uint64(cut)

	return chunk, nil
}

// Offset returns the absolute byte offset the next chunk will start at.
func (it *ChunkIterator) Offset() uint64 { return it.processed }
