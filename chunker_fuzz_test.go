package fastcdc_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/kalbasit/fastcdc"
)

func FuzzChunker(f *testing.F) {
	f.Add([]byte("content to be chunked into multiple pieces to verify the chunker works correctly"), 256, 1024, 4096, uint8(2))
	f.Add(make([]byte, 1024), 64, 256, 1024, uint8(1))
	f.Add([]byte{}, 64, 256, 1024, uint8(0))

	f.Fuzz(func(t *testing.T, data []byte, minSize, avgSize, maxSize int, normal uint8) {
		c, err := fastcdc.NewChunker(minSize, avgSize, maxSize, fastcdc.Normal(normal))
		if err != nil {
			// Invalid configuration; nothing further to check.
			return
		}

		it := c.Chunks(bytes.NewReader(data))

		var (
			reconstructed []byte
			totalLength   int
		)

		for {
			chunk, err := it.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if chunk.Length == 0 {
				t.Fatal("chunk length is 0")
			}
			if chunk.Length > maxSize {
				t.Fatalf("chunk length %d exceeds configured max", chunk.Length)
			}

			reconstructed = append(reconstructed, chunk.Data...)
			totalLength += chunk.Length
		}

		if totalLength != len(data) {
			t.Errorf("total length mismatch: got %d, want %d", totalLength, len(data))
		}

		if !bytes.Equal(data, reconstructed) {
			t.Error("reconstructed data does not match original")
		}
	})
}

func FuzzFindCutpoint(f *testing.F) {
	f.Add([]byte("some data to find a boundary in, long enough to exceed minimum size"), 16, 32, 64)
	f.Add(make([]byte, 4096), 256, 1024, 4096)

	f.Fuzz(func(t *testing.T, data []byte, minSize, avgSize, maxSize int) {
		c, err := fastcdc.NewChunker(minSize, avgSize, maxSize, fastcdc.NormalLevel2)
		if err != nil {
			return
		}

		it := c.Chunks(bytes.NewReader(data))

		chunk, err := it.Next()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if chunk.Length > len(data) {
			t.Fatalf("chunk length %d exceeds input length %d", chunk.Length, len(data))
		}
	})
}
