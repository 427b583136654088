package fastcdc

import "fmt"

// masks bundles the four normalized-chunking masks a Chunker needs: the
// strict (larger-popcount) mask for the
// pre-average region and the loose mask for the post-average region, each
// alongside its left-by-one-shifted companion for the byte-pair-unrolled
// inner loop of findCutpoint/findCutpointInner.
type masks struct {
	maskS   uint64
	maskSLS uint64
	maskL   uint64
	maskLLS uint64
}

// newMasks builds the masks for a chunker with
// bitsLog = floor(log2(avg_size)) at the given
// normalization level, per spec section 4.6: mask_s = MASK_TABLE[bits+off],
// mask_l = MASK_TABLE[bits-off].
func newMasks(bitsLog uint8, normal Normal) (masks, error) {
	off := normal.offset()

	sIdx := int(bitsLog) + int(off)
	lIdx := int(bitsLog) - int(off)

	if sIdx < 0 || sIdx >= len(maskTable) || lIdx < 0 || lIdx >= len(maskTable) {
		return masks{}, fmt.Errorf("fastcdc: mask table index out of range (bits=%d, normal=%s)", bitsLog, normal)
	}

	maskS := maskTable[sIdx]
	maskL := maskTable[lIdx]

	return masks{
		maskS:   maskS,
		maskSLS: maskS << 1,
		maskL:   maskL,
		maskLLS: maskL << 1,
	}, nil
}
