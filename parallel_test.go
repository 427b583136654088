package fastcdc_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalbasit/fastcdc"
)

func TestParallelChunkIndependentSessions(t *testing.T) {
	t.Parallel()

	c := newTestChunker(t)

	sources := make([][]byte, 5)
	readers := make([]io.Reader, len(sources))

	for i := range sources {
		sources[i] = make([]byte, 30_000+i*1000)
		_, err := rand.Read(sources[i])
		require.NoError(t, err)

		readers[i] = bytes.NewReader(sources[i])
	}

	results, err := fastcdc.ParallelChunk(context.Background(), c, readers)
	require.NoError(t, err)
	require.Len(t, results, len(sources))

	for i, chunks := range results {
		var reconstructed []byte
		for _, chunk := range chunks {
			reconstructed = append(reconstructed, chunk.Data...)
		}

		require.Equal(t, sources[i], reconstructed)
	}
}

func TestParallelChunkPropagatesError(t *testing.T) {
	t.Parallel()

	c := newTestChunker(t)
	boom := errors.New("boom")

	readers := []io.Reader{
		bytes.NewReader(make([]byte, 1000)),
		&errReader{remaining: 10, err: boom},
	}

	_, err := fastcdc.ParallelChunk(context.Background(), c, readers)
	require.ErrorIs(t, err, boom)
}
