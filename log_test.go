package fastcdc_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/kalbasit/fastcdc"
)

func TestWithLoggerEmitsBoundaryEvents(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := zerolog.New(&buf)

	c, err := fastcdc.NewChunker(testMinSize, testAvgSize, testMaxSize, fastcdc.NormalLevel2, fastcdc.WithLogger(log))
	require.NoError(t, err)

	data := make([]byte, 50_000)
	_, err = rand.Read(data)
	require.NoError(t, err)

	it := c.Chunks(bytes.NewReader(data))
	for {
		_, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}

	require.Contains(t, buf.String(), "chunk boundary")
}

func TestNoLoggerOptionIsSilent(t *testing.T) {
	t.Parallel()

	c := newTestChunker(t)

	data := make([]byte, 10_000)
	_, err := rand.Read(data)
	require.NoError(t, err)

	it := c.Chunks(bytes.NewReader(data))
	for {
		_, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}
}
