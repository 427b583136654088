package fastcdc

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"
)

// ParallelChunk runs one independent blocking chunking session per source
// concurrently, demonstrating (and relying on) the guarantee that a
// Chunker's sessions share nothing but its immutable configuration. It
// returns one chunk slice per source, in the same order as sources; if any
// session's reader returns an error, the group is canceled and that error
// is returned.
//
// This is a convenience for the common case of chunking an independent
// batch of inputs (e.g. the files in a backup set); it adds no chunking
// semantics beyond what Chunker.Chunks already provides per source.
func ParallelChunk(ctx context.Context, chunker *Chunker, sources []io.Reader) ([][]Chunk, error) {
	results := make([][]Chunk, len(sources))

	g, _ := errgroup.WithContext(ctx)

	for i, src := range sources {
		g.Go(func() error {
			it := chunker.Chunks(src)

			var chunks []Chunk
			for {
				chunk, err := it.Next()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return err
				}

				owned := Chunk{
					Offset: chunk.Offset,
					Length: chunk.Length,
					FPHash: chunk.FPHash,
					Data:   append([]byte(nil), chunk.Data...),
				}
				chunks = append(chunks, owned)
			}

			results[i] = chunks

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
