// Package fastcdc provides content-defined chunking (CDC) for data
// deduplication, using the FastCDC algorithm with a Gear-hash rolling
// fingerprint.
//
// # Overview
//
// FastCDC splits a byte stream into variable-length chunks whose
// boundaries are chosen from the stream's own content rather than fixed
// offsets, so that inserting or deleting bytes anywhere in a later version
// of the stream perturbs only the chunks near the edit. This is the
// property that makes content-defined chunking useful as the input to a
// deduplicating storage layer; this package only produces the chunk
// sequence — hashing chunks for deduplication identity, persistence, and
// indexing are left to the caller.
//
// # Quick start
//
// Blocking streaming API:
//
//	chunker, err := fastcdc.NewChunker(4069, 8192, 16384, fastcdc.NormalLevel2)
//	if err != nil {
//		// handle invalid config
//	}
//	it := chunker.Chunks(reader)
//	for {
//		chunk, err := it.Next()
//		if errors.Is(err, io.EOF) {
//			break
//		}
//		if err != nil {
//			// handle read error; it.Next() may be retried
//		}
//		// use chunk.Data
//	}
//
// Cooperative-suspension API, driven from a context:
//
//	stream := chunker.AsStream(asyncSource)
//	for chunk, err := range stream.Stream(ctx) {
//		if err != nil {
//			// handle error
//		}
//		// use chunk.Data
//	}
//
// # Algorithm
//
// Boundary search uses a Gear hash (h = (h<<1) + GEAR[b]) over a 256-entry
// table generated once at build time (see cmd/fastcdc-gen), with two
// regimes: a strict mask before the average size and a loose mask after
// it, so that chunk sizes concentrate around avg_size instead of drifting
// toward min_size the way naive sub-minimum skipping would cause. Masks
// are selected offline from per-bit bias and pairwise correlation over the
// gear table; see masks.go and cmd/fastcdc-gen.
//
// # Thread safety
//
// A *Chunker's configuration and masks are immutable after construction
// and safe to share across goroutines; each chunking session (each call to
// Chunks/AsStream) owns its own buffer and position state. Use
// [ChunkerPool] to recycle session objects in high-throughput code, or
// [ParallelChunk] to chunk several independent sources concurrently.
package fastcdc
