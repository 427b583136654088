package fastcdc

// findCutpoint scans src for a chunk boundary using the non-incremental,
// from-scratch contract: sub-minimum input is skipped without computing
// any hash and reports fpHash = 0. cut is always in [1, min(len(src),
// maxSize)].
//
// This is the entry point the blocking driver uses, where every call
// starts a fresh chunk at position 0 of src.
func findCutpoint(src []byte, minSize, avgSize, maxSize int, m masks) (fpHash uint64, cut int) {
	return findCutpointInner(src, 0, 0, minSize, avgSize, maxSize, m)
}

// findCutpointInner is the incremental variant: it resumes scanning at
// byte offset (aligned down to an even byte-pair boundary) with the
// caller's prevHash already folded in, so a caller that has already
// scanned a prefix of src without finding a boundary need not rescan it.
//
// When scanLen = min(len(src), maxSize) is itself <= minSize, this returns
// (prevHash, scanLen) unchanged — the incremental sub-minimum case keeps
// the caller's hash untouched, unlike findCutpoint's fpHash = 0. This
// distinction is intentional: it lets the async driver carry a checkpoint
// hash through a sub-minimum prefix without findCutpointInner silently
// discarding it.
func findCutpointInner(src []byte, offset int, prevHash uint64, minSize, avgSize, maxSize int, m masks) (fpHash uint64, cut int) {
	scanLen := len(src)
	if scanLen > maxSize {
		scanLen = maxSize
	}

	if scanLen <= minSize {
		return prevHash, scanLen
	}

	var start int
	h := prevHash
	if offset < minSize {
		start = minSize / 2
		h = 0
	} else {
		start = (offset / 2)
	}

	center := avgSize
	if center > scanLen {
		center = scanLen
	}
	center /= 2

	end := scanLen / 2

	truncated := false

	if start < center {
		for i := start; i < center && !truncated; i++ {
			b := i * 2
			if b+1 >= len(src) {
				truncated = true
				break
			}

			h = (h << 2) + gearTableLS[src[b]]
			if h&m.maskSLS == 0 {
				return h, b
			}

			h += gearTable[src[b+1]]
			if h&m.maskS == 0 {
				return h, b + 1
			}
		}
	}

	if start < center {
		start = center
	}

	for i := start; i < end && !truncated; i++ {
		b := i * 2
		if b+1 >= len(src) {
			truncated = true
			break
		}

		h = (h << 2) + gearTableLS[src[b]]
		if h&m.maskLLS == 0 {
			return h, b
		}

		h += gearTable[src[b+1]]
		if h&m.maskL == 0 {
			return h, b + 1
		}
	}

	return h, scanLen
}
