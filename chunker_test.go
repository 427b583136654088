package fastcdc_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalbasit/fastcdc"
)

const (
	testMinSize = 2048
	testAvgSize = 8192
	testMaxSize = 16384
)

func newTestChunker(t *testing.T) *fastcdc.Chunker {
	t.Helper()

	c, err := fastcdc.NewChunker(testMinSize, testAvgSize, testMaxSize, fastcdc.NormalLevel2)
	require.NoError(t, err)

	return c
}

func TestChunkerEmptyInput(t *testing.T) {
	t.Parallel()

	c := newTestChunker(t)
	it := c.Chunks(bytes.NewReader(nil))

	_, err := it.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestChunkerSmallerThanMinSize(t *testing.T) {
	t.Parallel()

	c := newTestChunker(t)
	data := make([]byte, testMinSize-1)
	_, _ = rand.Read(data)

	it := c.Chunks(bytes.NewReader(data))

	chunk, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, len(data), chunk.Length)
	require.Equal(t, data, chunk.Data)

	_, err = it.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestChunkerRoundTrip(t *testing.T) {
	t.Parallel()

	data := make([]byte, 50_000)
	_, err := rand.Read(data)
	require.NoError(t, err)

	c := newTestChunker(t)
	it := c.Chunks(bytes.NewReader(data))

	var (
		reconstructed []byte
		chunks        []fastcdc.Chunk
	)

	for {
		chunk, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)

		reconstructed = append(reconstructed, chunk.Data...)
		chunks = append(chunks, chunk)

		isFinal := chunk.Offset+uint64(chunk.Length) == uint64(len(data))
		if chunk.Length < testMinSize {
			require.True(t, isFinal, "undersized chunk %d at offset %d must be final", chunk.Length, chunk.Offset)
		}
		require.LessOrEqual(t, chunk.Length, testMaxSize)
	}

	require.Equal(t, data, reconstructed)
	require.NotEmpty(t, chunks)
}

func TestChunkerDeterminism(t *testing.T) {
	t.Parallel()

	data := make([]byte, 200_000)
	_, err := rand.Read(data)
	require.NoError(t, err)

	collect := func() []fastcdc.Chunk {
		c := newTestChunker(t)
		it := c.Chunks(bytes.NewReader(data))

		var chunks []fastcdc.Chunk
		for {
			chunk, err := it.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			require.NoError(t, err)

			chunks = append(chunks, chunk)
		}

		return chunks
	}

	a := collect()
	b := collect()
	require.Equal(t, len(a), len(b))

	for i := range a {
		require.Equal(t, a[i].Offset, b[i].Offset)
		require.Equal(t, a[i].Length, b[i].Length)
		require.Equal(t, a[i].FPHash, b[i].FPHash)
	}
}

// errReader returns a fixed error after emitting n bytes of zero-fill.
type errReader struct {
	remaining int
	err       error
}

func (r *errReader) Read(p []byte) (int, error) {
	if r.remaining <= 0 {
		return 0, r.err
	}

	n := len(p)
	if n > r.remaining {
		n = r.remaining
	}
	r.remaining -= n

	return n, nil
}

func TestChunkerPropagatesReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	c := newTestChunker(t)
	it := c.Chunks(&errReader{remaining: 100, err: boom})

	_, err := it.Next()
	require.ErrorIs(t, err, boom)
}

func TestChunkerOffsetAdvances(t *testing.T) {
	t.Parallel()

	data := make([]byte, 60_000)
	_, err := rand.Read(data)
	require.NoError(t, err)

	c := newTestChunker(t)
	it := c.Chunks(bytes.NewReader(data))

	require.Zero(t, it.Offset())

	chunk, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, chunk.Offset+uint64(chunk.Length), it.Offset())
}
