package fastcdc

import (
	"context"
	"errors"
	"io"
)

// AsyncSource is the non-blocking byte-source contract for the
// cooperative-suspension driver. PollRead behaves like a non-blocking
// socket read: it fills some of buf and returns n>0, or returns (0, nil)
// to mean "not ready yet, call again" (the driver's suspension point), or
// (0, io.EOF) at end of stream, or a non-nil error on failure. PollRead
// must itself respect ctx cancellation; the driver does not separately
// time it out.
type AsyncSource interface {
	PollRead(ctx context.Context, buf []byte) (n int, err error)
}

// AsyncChunker is a single cooperative-suspension chunking session: one
// instance per call to Chunker.AsStream, owning its own buffer, position,
// and incremental-scan checkpoint.
//
// Unlike ChunkIterator, AsyncChunker never blocks on CPU work between
// suspensions: the cut-point search is bounded by max_size per emitted
// chunk, and the scanned/fpHashCarry checkpoint keeps total work O(N) in
// input size across however many polls it takes to fill the buffer.
type AsyncChunker struct {
	chunker *Chunker
	source  AsyncSource

	buf       []byte
	processed uint64
	eof       bool

	scanned     int
	fpHashCarry uint64
}

// AsStream starts a new cooperative-suspension chunking session over src.
func (c *Chunker) AsStream(src AsyncSource) *AsyncChunker {
	return &AsyncChunker{
		chunker: c,
		source:  src,
		buf:     make([]byte, 0, c.cfg.bufferSize),
	}
}

// reservation is how many bytes to ask PollRead to fill next: between 4096
// and the remaining room to max_size, never less than min_size, per spec
// section 4.5.
func (a *AsyncChunker) reservation() int {
	room := a.chunker.cfg.maxSize - len(a.buf)

	want := 4096
	if want > room {
		want = room
	}
	if want < a.chunker.cfg.minSize {
		want = a.chunker.cfg.minSize
	}
	if want > room {
		want = room
	}

	return want
}

// Poll advances the session by at most one step: it returns a produced
// chunk (ok=true), end of stream (ok=false, err=nil), a source error
// (ok=false, err!=nil), or — if the source isn't ready and more data is
// needed — (ok=false, err=nil) after ctx.Err() is checked, signaling the
// caller should poll again later. Callers that want a blocking pull loop
// should use Stream instead.
func (a *AsyncChunker) Poll(ctx context.Context) (chunk Chunk, ok bool, err error) {
	for {
		if a.eof && len(a.buf) == 0 {
			return Chunk{}, false, nil
		}

		ready := len(a.buf) >= a.chunker.cfg.minSize || (a.eof && len(a.buf) > 0)

		if ready {
			scanLen := len(a.buf)
			if scanLen > a.chunker.cfg.maxSize {
				scanLen = a.chunker.cfg.maxSize
			}

			newHash, cp := findCutpointInner(a.buf[:scanLen], a.scanned, a.fpHashCarry, a.chunker.cfg.minSize, a.chunker.cfg.avgSize, a.chunker.cfg.maxSize, a.chunker.cfg.masks)

			var (
				cut     int
				forced  bool
				haveCut = true
			)
			switch {
			case cp < scanLen:
				cut = cp
			case len(a.buf) >= a.chunker.cfg.maxSize:
				cut, forced = a.chunker.cfg.maxSize, true
			case a.eof:
				cut, forced = scanLen, true
			default:
				haveCut = false
				a.scanned = scanLen / 2 * 2
				if a.scanned < a.chunker.cfg.minSize {
					a.scanned = a.chunker.cfg.minSize
				}
				a.fpHashCarry = newHash
				a.chunker.logger.suspend(a.processed, len(a.buf))
			}

			if haveCut {
				chunk = a.yieldChunk(cut, newHash)
				a.chunker.logger.boundary(chunk.Offset, chunk.Length, chunk.FPHash, forced)

				return chunk, true, nil
			}
		}

		if len(a.buf) >= a.chunker.cfg.maxSize || a.eof {
			return Chunk{}, false, ctx.Err()
		}

		if err := ctx.Err(); err != nil {
			return Chunk{}, false, err
		}

		n, err := a.readMore(ctx)
		if err != nil {
			a.chunker.logger.readError(a.processed, err)

			return Chunk{}, false, err
		}
		if n == 0 && !a.eof {
			// Source reported "not ready"; give control back to the caller.
			return Chunk{}, false, nil
		}
	}
}

func (a *AsyncChunker) readMore(ctx context.Context) (int, error) {
	want := a.reservation()
	if want <= 0 {
		return 0, nil
	}

	if cap(a.buf)-len(a.buf) < want {
		grown := make([]byte, len(a.buf), len(a.buf)+want)
		copy(grown, a.buf)
		a.buf = grown
	}

	start := len(a.buf)
	n, err := a.source.PollRead(ctx, a.buf[start:start+want])
	a.buf = a.buf[:start+n]

	if n == 0 {
		if errors.Is(err, io.EOF) {
			a.eof = true

			return 0, nil
		}
		if err != nil {
			return 0, err
		}

		return 0, nil
	}

	return n, nil
}

func (a *AsyncChunker) yieldChunk(cut int, fpHash uint64) Chunk {
	data := make([]byte, cut)
	copy(data, a.buf[:cut])

	chunk := Chunk{
		Offset: a.processed,
		Length: cut,
		Data:   data,
		FPHash: fpHash,
	}

	remaining := make([]byte, len(a.buf)-cut, cap(a.buf))
	copy(remaining, a.buf[cut:])
	a.buf = remaining

	a.processed += uint64(cut)
	a.scanned = 0
	a.fpHashCarry = 0

	return chunk
}

// Stream wraps repeated Poll calls as a Go 1.23 range-over-func iterator,
// for callers that prefer `for chunk, err := range stream.Stream(ctx)`
// over a manual Poll loop. Iteration stops (the range body sees no more
// values) at end of stream; a non-nil err is delivered as one final
// (Chunk{}, err) pair before stopping. A source that repeatedly reports
// "not ready" without ctx being canceled will make Stream spin; callers
// driving a genuinely asynchronous source should prefer calling Poll
// directly from their own event loop.
func (a *AsyncChunker) Stream(ctx context.Context) func(yield func(Chunk, error) bool) {
	return func(yield func(Chunk, error) bool) {
		for {
			chunk, ok, err := a.Poll(ctx)
			if err != nil {
				yield(Chunk{}, err)

				return
			}
			if !ok {
				if a.eof && len(a.buf) == 0 {
					return
				}

				// Source not ready yet; poll again.
				continue
			}

			if !yield(chunk, nil) {
				return
			}
		}
	}
}
