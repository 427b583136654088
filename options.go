package fastcdc

import (
	"errors"
	"fmt"
	"math/bits"
)

// Normal selects the normalization level used when choosing masks around
// avg_size. Higher levels narrow the spread of chunk sizes around avg_size
// at the cost of slightly weaker deduplication; NormalLevel2 is the
// recommended default.
type Normal uint8

const (
	// NormalNone disables normalization: both masks equal the avg_size mask.
	NormalNone Normal = iota
	// NormalLevel1 narrows the size distribution slightly.
	NormalLevel1
	// NormalLevel2 is the recommended default.
	NormalLevel2
	// NormalLevel3 narrows the size distribution the most.
	NormalLevel3
)

// offset returns the mask-table index offset for this normalization level.
func (n Normal) offset() uint8 {
	return uint8(n)
}

func (n Normal) String() string {
	switch n {
	case NormalNone:
		return "none"
	case NormalLevel1:
		return "level1"
	case NormalLevel2:
		return "level2"
	case NormalLevel3:
		return "level3"
	default:
		return fmt.Sprintf("Normal(%d)", uint8(n))
	}
}

// Bounds on chunker configuration, per the FastCDC chunk-size contract.
const (
	MinChunkSizeFloor = 64
	MinChunkSizeCeil  = 1 << 20 // 1 MiB

	AvgChunkSizeFloor = 256
	AvgChunkSizeCeil  = 4 << 20 // 4 MiB

	MaxChunkSizeFloor = 1024
	MaxChunkSizeCeil  = 16 << 20 // 16 MiB
)

// Sentinel errors identifying the kind of configuration bound violated.
// Use errors.Is against these, or inspect the returned *ConfigError for the
// offending value.
var (
	ErrMinSizeOutOfRange = errors.New("fastcdc: min_size out of range")
	ErrAvgSizeOutOfRange = errors.New("fastcdc: avg_size out of range")
	ErrMaxSizeOutOfRange = errors.New("fastcdc: max_size out of range")
	ErrInvalidNormal     = errors.New("fastcdc: normal out of range")
	ErrSizeOrdering      = errors.New("fastcdc: min_size < avg_size < max_size required")
	ErrInvalidBufferSize = errors.New("fastcdc: buffer size must be at least max_size")
)

// ConfigError reports an invalid chunker construction argument. It wraps
// one of the package's sentinel Err* values, so callers can match it with
// errors.Is without depending on the message text.
type ConfigError struct {
	Err   error
	Field string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s (%s=%d)", e.Err, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Config is the immutable, validated configuration of a Chunker. Use
// NewChunker to construct one from raw bounds.
type Config struct {
	minSize    int
	avgSize    int
	maxSize    int
	normal     Normal
	bufferSize int

	bits  uint8
	masks masks
}

// DefaultBufferMultiple is how many times maxSize the default streaming
// buffer is sized at, to amortize read syscalls against upfront allocation.
const DefaultBufferMultiple = 2

// newConfig validates (minSize, avgSize, maxSize, normal) and derives the
// masks for avgSize. bufferSize, if zero, defaults to
// DefaultBufferMultiple*maxSize.
func newConfig(minSize, avgSize, maxSize int, normal Normal, bufferSize int) (*Config, error) {
	if minSize < MinChunkSizeFloor || minSize > MinChunkSizeCeil {
		return nil, &ConfigError{Err: ErrMinSizeOutOfRange, Field: "min_size", Value: minSize}
	}
	if avgSize < AvgChunkSizeFloor || avgSize > AvgChunkSizeCeil {
		return nil, &ConfigError{Err: ErrAvgSizeOutOfRange, Field: "avg_size", Value: avgSize}
	}
	if maxSize < MaxChunkSizeFloor || maxSize > MaxChunkSizeCeil {
		return nil, &ConfigError{Err: ErrMaxSizeOutOfRange, Field: "max_size", Value: maxSize}
	}
	if normal > NormalLevel3 {
		return nil, &ConfigError{Err: ErrInvalidNormal, Field: "normal", Value: int(normal)}
	}
	if !(minSize < avgSize && avgSize < maxSize) {
		return nil, &ConfigError{Err: ErrSizeOrdering, Field: "avg_size", Value: avgSize}
	}

	if bufferSize == 0 {
		bufferSize = maxSize * DefaultBufferMultiple
	}
	if bufferSize < maxSize {
		return nil, &ConfigError{Err: ErrInvalidBufferSize, Field: "buffer_size", Value: bufferSize}
	}

	bitsLog := uint8(bits.Len(uint(avgSize)) - 1)

	m, err := newMasks(bitsLog, normal)
	if err != nil {
		return nil, err
	}

	return &Config{
		minSize:    minSize,
		avgSize:    avgSize,
		maxSize:    maxSize,
		normal:     normal,
		bufferSize: bufferSize,
		bits:       bitsLog,
		masks:      m,
	}, nil
}

// MinSize returns the configured minimum chunk size.
func (c *Config) MinSize() int { return c.minSize }

// AvgSize returns the configured average chunk size.
func (c *Config) AvgSize() int { return c.avgSize }

// MaxSize returns the configured maximum chunk size.
func (c *Config) MaxSize() int { return c.maxSize }

// Normal returns the configured normalization level.
func (c *Config) Normal() Normal { return c.normal }
